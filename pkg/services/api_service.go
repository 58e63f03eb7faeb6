package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/legacyuse/orchestrator/ent"
	"github.com/legacyuse/orchestrator/ent/apidefinition"
	"github.com/legacyuse/orchestrator/ent/apidefinitionversion"
	"github.com/legacyuse/orchestrator/pkg/database"
	"github.com/legacyuse/orchestrator/pkg/models"
)

// APIService manages API definitions and their versions. Version numbers are
// monotonic per definition and at most one version is active at a time; the
// flip happens inside a transaction.
type APIService struct {
	db *database.Client
}

// NewAPIService creates a new APIService.
func NewAPIService(db *database.Client) *APIService {
	return &APIService{db: db}
}

// CreateDefinition creates an API definition.
func (s *APIService) CreateDefinition(ctx context.Context, name, description string) (*ent.APIDefinition, error) {
	if name == "" {
		return nil, NewValidationError("name", "required")
	}
	def, err := s.db.APIDefinition.Create().
		SetID(uuid.New().String()).
		SetName(name).
		SetDescription(description).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("creating api definition: %w", err)
	}
	return def, nil
}

// GetDefinitionByName loads a non-archived definition by its unique name.
func (s *APIService) GetDefinitionByName(ctx context.Context, name string) (*ent.APIDefinition, error) {
	def, err := s.db.APIDefinition.Query().
		Where(
			apidefinition.NameEQ(name),
			apidefinition.IsArchived(false),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting api definition %q: %w", name, err)
	}
	return def, nil
}

// ListDefinitions returns non-archived definitions.
func (s *APIService) ListDefinitions(ctx context.Context) ([]*ent.APIDefinition, error) {
	defs, err := s.db.APIDefinition.Query().
		Where(apidefinition.IsArchived(false)).
		Order(ent.Asc(apidefinition.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing api definitions: %w", err)
	}
	return defs, nil
}

// ArchiveDefinition flags a definition as archived.
func (s *APIService) ArchiveDefinition(ctx context.Context, id string) error {
	err := s.db.APIDefinition.UpdateOneID(id).
		SetIsArchived(true).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

// CreateVersionRequest contains fields for creating an API version.
type CreateVersionRequest struct {
	APIDefinitionID string
	Parameters      []models.APIParameter
	Prompt          string
	PromptCleanup   string
	ResponseExample map[string]any
	Activate        bool
}

// CreateVersion appends the next version of a definition; with Activate set,
// the new version becomes the single active one.
func (s *APIService) CreateVersion(ctx context.Context, req CreateVersionRequest) (*ent.APIDefinitionVersion, error) {
	if req.APIDefinitionID == "" {
		return nil, NewValidationError("api_definition_id", "required")
	}
	if req.Prompt == "" {
		return nil, NewValidationError("prompt", "required")
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	next := 1
	last, err := tx.APIDefinitionVersion.Query().
		Where(apidefinitionversion.APIDefinitionIDEQ(req.APIDefinitionID)).
		Order(ent.Desc(apidefinitionversion.FieldVersionNumber)).
		First(ctx)
	switch {
	case err == nil:
		next = last.VersionNumber + 1
	case ent.IsNotFound(err):
	default:
		return nil, fmt.Errorf("querying last version: %w", err)
	}

	if req.Activate {
		_, err = tx.APIDefinitionVersion.Update().
			Where(
				apidefinitionversion.APIDefinitionIDEQ(req.APIDefinitionID),
				apidefinitionversion.IsActive(true),
			).
			SetIsActive(false).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("deactivating previous versions: %w", err)
		}
	}

	builder := tx.APIDefinitionVersion.Create().
		SetID(uuid.New().String()).
		SetAPIDefinitionID(req.APIDefinitionID).
		SetVersionNumber(next).
		SetPrompt(req.Prompt).
		SetPromptCleanup(req.PromptCleanup).
		SetIsActive(req.Activate)
	if req.Parameters != nil {
		builder.SetParameters(req.Parameters)
	}
	if req.ResponseExample != nil {
		builder.SetResponseExample(req.ResponseExample)
	}

	v, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating api version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing version: %w", err)
	}
	return v, nil
}

// ActivateVersion makes the given version the single active one for its
// definition.
func (s *APIService) ActivateVersion(ctx context.Context, versionID string) error {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	v, err := tx.APIDefinitionVersion.Get(ctx, versionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("getting version: %w", err)
	}

	_, err = tx.APIDefinitionVersion.Update().
		Where(
			apidefinitionversion.APIDefinitionIDEQ(v.APIDefinitionID),
			apidefinitionversion.IsActive(true),
		).
		SetIsActive(false).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("deactivating previous versions: %w", err)
	}

	if err := tx.APIDefinitionVersion.UpdateOneID(versionID).
		SetIsActive(true).
		Exec(ctx); err != nil {
		return fmt.Errorf("activating version: %w", err)
	}

	return tx.Commit()
}

// GetActiveVersion resolves the active version of a named API.
func (s *APIService) GetActiveVersion(ctx context.Context, apiName string) (*ent.APIDefinitionVersion, error) {
	def, err := s.GetDefinitionByName(ctx, apiName)
	if err != nil {
		return nil, err
	}
	v, err := s.db.APIDefinitionVersion.Query().
		Where(
			apidefinitionversion.APIDefinitionIDEQ(def.ID),
			apidefinitionversion.IsActive(true),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("api %q has no active version: %w", apiName, ErrNotFound)
		}
		return nil, fmt.Errorf("getting active version for %q: %w", apiName, err)
	}
	return v, nil
}

// GetVersion loads a version by ID.
func (s *APIService) GetVersion(ctx context.Context, id string) (*ent.APIDefinitionVersion, error) {
	v, err := s.db.APIDefinitionVersion.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting version: %w", err)
	}
	return v, nil
}

// ListVersions returns all versions of a definition, newest first.
func (s *APIService) ListVersions(ctx context.Context, apiDefinitionID string) ([]*ent.APIDefinitionVersion, error) {
	versions, err := s.db.APIDefinitionVersion.Query().
		Where(apidefinitionversion.APIDefinitionIDEQ(apiDefinitionID)).
		Order(ent.Desc(apidefinitionversion.FieldVersionNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing versions: %w", err)
	}
	return versions, nil
}
