package internal

import (
	"github.com/rios0rios0/releaseforge/internal/domain/entities"
)

// AppInternal aggregates the wired application pieces the entrypoint needs.
type AppInternal struct {
	controllers *[]entities.Controller
}

// NewAppInternal creates the aggregate from the DIG-provided controllers.
func NewAppInternal(controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: controllers}
}

// GetControllers returns every registered CLI controller.
func (it *AppInternal) GetControllers() []entities.Controller {
	return *it.controllers
}
