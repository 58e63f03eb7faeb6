// Package sandbox manages per-session sandbox containers through the Docker
// API and speaks the sandbox's HTTP facade (health probe, tool_use forwarding).
package sandbox

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/strslice"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/stdcopy"
	"github.com/docker/go-connections/nat"

	"github.com/legacyuse/orchestrator/pkg/config"
)

// Manager is the runtime contract the session provisioner and lifecycle
// monitor consume. Implemented by DockerManager; tests substitute fakes.
type Manager interface {
	Launch(ctx context.Context, spec LaunchSpec) (containerID string, err error)
	Inspect(ctx context.Context, containerID string) (*ContainerStatus, error)
	GetIP(ctx context.Context, containerID string) (string, error)
	Exec(ctx context.Context, containerID string, argv []string) (string, error)
	Stop(ctx context.Context, containerID string) error
	Remove(ctx context.Context, containerID string) error
}

// LaunchSpec describes one sandbox container.
type LaunchSpec struct {
	Name string
	Env  map[string]string
	// UseVPNDevices adds NET_ADMIN/NET_RAW and /dev/net/tun, required by
	// OpenVPN targets.
	UseVPNDevices bool
}

// ContainerStatus is the subset of container inspection the monitor needs.
type ContainerStatus struct {
	Running  bool
	ExitCode int
	Networks map[string]string // network name -> IPv4
}

// DockerManager implements Manager against a local Docker daemon.
type DockerManager struct {
	cli            *client.Client
	cfg            *config.SandboxConfig
	backendPattern *regexp.Regexp
}

// NewDockerManager connects to the daemon from the environment.
func NewDockerManager(cfg *config.SandboxConfig) (*DockerManager, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("creating docker client: %w", err)
	}
	pattern, err := regexp.Compile(cfg.BackendContainerPattern)
	if err != nil {
		return nil, fmt.Errorf("compiling backend container pattern: %w", err)
	}
	return &DockerManager{cli: cli, cfg: cfg, backendPattern: pattern}, nil
}

// Close releases the daemon connection.
func (m *DockerManager) Close() error {
	return m.cli.Close()
}

// Launch creates and starts a sandbox container. When a running backend
// container matches the configured name pattern, the sandbox joins its
// compose network so the two can talk directly.
func (m *DockerManager) Launch(ctx context.Context, spec LaunchSpec) (string, error) {
	env := make([]string, 0, len(spec.Env))
	for k, v := range spec.Env {
		env = append(env, k+"="+v)
	}

	hostConfig := &container.HostConfig{}
	if spec.UseVPNDevices {
		hostConfig.CapAdd = strslice.StrSlice{"NET_ADMIN", "NET_RAW"}
		hostConfig.Resources.Devices = []container.DeviceMapping{{
			PathOnHost:        "/dev/net/tun",
			PathInContainer:   "/dev/net/tun",
			CgroupPermissions: "rwm",
		}}
	}
	if netName, err := m.projectNetwork(ctx); err == nil && netName != "" {
		hostConfig.NetworkMode = container.NetworkMode(netName)
	}

	facadePort, err := nat.NewPort("tcp", strconv.Itoa(m.cfg.HealthPort))
	if err != nil {
		return "", fmt.Errorf("building facade port: %w", err)
	}

	created, err := m.cli.ContainerCreate(ctx,
		&container.Config{
			Image:        m.cfg.Image,
			Env:          env,
			ExposedPorts: nat.PortSet{facadePort: struct{}{}},
		},
		hostConfig, nil, nil, spec.Name,
	)
	if err != nil {
		return "", fmt.Errorf("creating container %s: %w", spec.Name, err)
	}

	if err := m.cli.ContainerStart(ctx, created.ID, container.StartOptions{}); err != nil {
		_ = m.cli.ContainerRemove(ctx, created.ID, container.RemoveOptions{Force: true})
		return "", fmt.Errorf("starting container %s: %w", spec.Name, err)
	}
	return created.ID, nil
}

// projectNetwork finds the first network of a running backend container
// matching the configured pattern. Empty when none matches.
func (m *DockerManager) projectNetwork(ctx context.Context) (string, error) {
	containers, err := m.cli.ContainerList(ctx, container.ListOptions{})
	if err != nil {
		return "", fmt.Errorf("listing containers: %w", err)
	}
	for _, c := range containers {
		for _, name := range c.Names {
			if m.backendPattern.MatchString(strings.TrimPrefix(name, "/")) {
				inspected, err := m.cli.ContainerInspect(ctx, c.ID)
				if err != nil {
					return "", fmt.Errorf("inspecting backend container: %w", err)
				}
				for netName := range inspected.NetworkSettings.Networks {
					return netName, nil
				}
			}
		}
	}
	return "", nil
}

// Inspect implements Manager.
func (m *DockerManager) Inspect(ctx context.Context, containerID string) (*ContainerStatus, error) {
	inspected, err := m.cli.ContainerInspect(ctx, containerID)
	if err != nil {
		return nil, fmt.Errorf("inspecting container %s: %w", containerID, err)
	}
	status := &ContainerStatus{
		Networks: make(map[string]string),
	}
	if inspected.State != nil {
		status.Running = inspected.State.Running
		status.ExitCode = inspected.State.ExitCode
	}
	if inspected.NetworkSettings != nil {
		for name, endpoint := range inspected.NetworkSettings.Networks {
			status.Networks[name] = endpoint.IPAddress
		}
	}
	return status, nil
}

// GetIP implements Manager: the first non-bridge network's IPv4, falling back
// to the bridge address.
func (m *DockerManager) GetIP(ctx context.Context, containerID string) (string, error) {
	status, err := m.Inspect(ctx, containerID)
	if err != nil {
		return "", err
	}
	bridge := ""
	for name, ip := range status.Networks {
		if name == "bridge" {
			bridge = ip
			continue
		}
		if ip != "" {
			return ip, nil
		}
	}
	if bridge != "" {
		return bridge, nil
	}
	return "", fmt.Errorf("container %s has no IPv4 address", containerID)
}

// Exec implements Manager: runs argv inside the container and returns its
// combined output. Used to read /proc/loadavg for load reporting.
func (m *DockerManager) Exec(ctx context.Context, containerID string, argv []string) (string, error) {
	created, err := m.cli.ContainerExecCreate(ctx, containerID, container.ExecOptions{
		Cmd:          argv,
		AttachStdout: true,
		AttachStderr: true,
	})
	if err != nil {
		return "", fmt.Errorf("creating exec in %s: %w", containerID, err)
	}

	attached, err := m.cli.ContainerExecAttach(ctx, created.ID, container.ExecAttachOptions{})
	if err != nil {
		return "", fmt.Errorf("attaching exec in %s: %w", containerID, err)
	}
	defer attached.Close()

	var out, errOut strings.Builder
	if _, err := stdcopy.StdCopy(&out, &errOut, attached.Reader); err != nil && err != io.EOF {
		return "", fmt.Errorf("reading exec output: %w", err)
	}
	if errOut.Len() > 0 && out.Len() == 0 {
		return "", fmt.Errorf("exec in %s failed: %s", containerID, strings.TrimSpace(errOut.String()))
	}
	return out.String(), nil
}

// Stop implements Manager with the configured stop timeout.
func (m *DockerManager) Stop(ctx context.Context, containerID string) error {
	seconds := int(m.cfg.StopTimeout.Seconds())
	if err := m.cli.ContainerStop(ctx, containerID, container.StopOptions{Timeout: &seconds}); err != nil {
		return fmt.Errorf("stopping container %s: %w", containerID, err)
	}
	return nil
}

// Remove implements Manager.
func (m *DockerManager) Remove(ctx context.Context, containerID string) error {
	if err := m.cli.ContainerRemove(ctx, containerID, container.RemoveOptions{Force: true}); err != nil {
		return fmt.Errorf("removing container %s: %w", containerID, err)
	}
	return nil
}
