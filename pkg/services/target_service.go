package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/legacyuse/orchestrator/ent"
	"github.com/legacyuse/orchestrator/ent/target"
	"github.com/legacyuse/orchestrator/pkg/database"
)

// TargetService manages remote system configurations.
type TargetService struct {
	db *database.Client
}

// NewTargetService creates a new TargetService.
func NewTargetService(db *database.Client) *TargetService {
	return &TargetService{db: db}
}

// CreateTargetRequest contains fields for creating a target.
type CreateTargetRequest struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Host        string `json:"host"`
	Port        *int   `json:"port,omitempty"`
	Username    string `json:"username,omitempty"`
	Password    string `json:"password"`
	VPNConfig   string `json:"vpn_config,omitempty"`
	VPNUsername string `json:"vpn_username,omitempty"`
	VPNPassword string `json:"vpn_password,omitempty"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
	RDPParams   string `json:"rdp_params,omitempty"`
}

// Create creates a target.
func (s *TargetService) Create(ctx context.Context, req CreateTargetRequest) (*ent.Target, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.Type == "" {
		return nil, NewValidationError("type", "required")
	}
	if req.Host == "" {
		return nil, NewValidationError("host", "required")
	}

	builder := s.db.Target.Create().
		SetID(uuid.New().String()).
		SetName(req.Name).
		SetType(req.Type).
		SetHost(req.Host).
		SetPassword(req.Password)
	if req.Port != nil {
		builder.SetPort(*req.Port)
	}
	if req.Username != "" {
		builder.SetUsername(req.Username)
	}
	if req.VPNConfig != "" {
		builder.SetVpnConfig(req.VPNConfig)
	}
	if req.VPNUsername != "" {
		builder.SetVpnUsername(req.VPNUsername)
	}
	if req.VPNPassword != "" {
		builder.SetVpnPassword(req.VPNPassword)
	}
	if req.Width > 0 {
		builder.SetWidth(req.Width)
	}
	if req.Height > 0 {
		builder.SetHeight(req.Height)
	}
	if req.RDPParams != "" {
		builder.SetRdpParams(req.RDPParams)
	}

	t, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating target: %w", err)
	}
	return t, nil
}

// Get loads a target by ID.
func (s *TargetService) Get(ctx context.Context, id string) (*ent.Target, error) {
	t, err := s.db.Target.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting target: %w", err)
	}
	return t, nil
}

// List returns non-archived targets.
func (s *TargetService) List(ctx context.Context) ([]*ent.Target, error) {
	targets, err := s.db.Target.Query().
		Where(target.IsArchived(false)).
		Order(ent.Asc(target.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing targets: %w", err)
	}
	return targets, nil
}

// Archive flags a target as archived; its sessions and jobs remain for audit.
func (s *TargetService) Archive(ctx context.Context, id string) error {
	err := s.db.Target.UpdateOneID(id).
		SetIsArchived(true).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

// SplitType splits a target type into client type and VPN type on the first
// '_' or '+' separator: "rdp+openvpn" yields ("rdp", "openvpn"); a plain
// "vnc" yields ("vnc", "").
func SplitType(targetType string) (clientType, vpnType string) {
	if i := strings.IndexAny(targetType, "_+"); i >= 0 {
		return targetType[:i], targetType[i+1:]
	}
	return targetType, ""
}
