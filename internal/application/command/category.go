package command

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/mediator"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// CreateCategoryCommand crea una categoría nueva.
type CreateCategoryCommand struct {
	Name string `json:"name"`
}

// UpdateCategoryCommand renombra una categoría existente.
type UpdateCategoryCommand struct {
	ID   string `json:"-"`
	Name string `json:"name"`
}

// DeleteCategoryCommand elimina una categoría y, en cascada, sus productos.
type DeleteCategoryCommand struct {
	ID string `json:"-"`
}

// ValidateCreateCategory exige un nombre no nulo y no vacío.
func ValidateCreateCategory(cmd CreateCategoryCommand) []mediator.Violation {
	return requireName(cmd.Name)
}

// ValidateUpdateCategory exige id válido y nombre no vacío.
func ValidateUpdateCategory(cmd UpdateCategoryCommand) []mediator.Violation {
	v := requireUUID("id", cmd.ID)
	return append(v, requireName(cmd.Name)...)
}

// ValidateDeleteCategory exige un id válido.
func ValidateDeleteCategory(cmd DeleteCategoryCommand) []mediator.Violation {
	return requireUUID("id", cmd.ID)
}

func requireName(name string) []mediator.Violation {
	if strings.TrimSpace(name) == "" {
		return []mediator.Violation{{Field: "name", Message: "no puede ser nulo ni vacío"}}
	}
	return nil
}

func requireUUID(field, value string) []mediator.Violation {
	if value == "" {
		return []mediator.Violation{{Field: field, Message: "es requerido"}}
	}
	if err := uuid.Validate(value); err != nil {
		return []mediator.Violation{{Field: field, Message: "debe ser un UUID válido"}}
	}
	return nil
}

// CategoryCommands handlers de mutación para Category.
type CategoryCommands struct {
	categories repository.CategoryRepository
}

// NewCategoryCommands construye los handlers.
func NewCategoryCommands(categories repository.CategoryRepository) *CategoryCommands {
	return &CategoryCommands{categories: categories}
}

// Create genera identidad, marcas de tiempo y token inicial, y persiste.
func (h *CategoryCommands) Create(ctx context.Context, cmd CreateCategoryCommand) (*dto.CategoryResult, error) {
	now := time.Now().UTC()
	category := &entity.Category{
		ID:         uuid.New().String(),
		Name:       cmd.Name,
		CreatedAt:  now,
		UpdatedAt:  now,
		RowVersion: uuid.New().String(),
	}
	if err := h.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return dto.NewCategoryResult(category), nil
}

// Update carga, muta el nombre y guarda con el token leído en la carga.
func (h *CategoryCommands) Update(ctx context.Context, cmd UpdateCategoryCommand) (*dto.CategoryResult, error) {
	category, err := h.categories.GetByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	expected := category.RowVersion
	category.Name = cmd.Name
	category.UpdatedAt = time.Now().UTC()
	if err := h.categories.Save(ctx, category, expected); err != nil {
		return nil, err
	}
	return dto.NewCategoryResult(category), nil
}

// Delete elimina la categoría; el esquema se encarga de la cascada a productos.
func (h *CategoryCommands) Delete(ctx context.Context, cmd DeleteCategoryCommand) (struct{}, error) {
	category, err := h.categories.GetByID(ctx, cmd.ID)
	if err != nil {
		return struct{}{}, err
	}
	if category == nil {
		return struct{}{}, domain.ErrNotFound
	}
	return struct{}{}, h.categories.Delete(ctx, cmd.ID)
}
