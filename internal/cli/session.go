package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/happycollision/pyenv/internal/config"
	"github.com/happycollision/pyenv/internal/resolve"
)

// session is the state every command starts from
type session struct {
	root     string
	settings *config.Settings
	resolver *resolve.Resolver
	logger   *zap.Logger
}

func newSession(cmd *cobra.Command) (*session, error) {
	logger := newLogger(cmd.ErrOrStderr())

	root, err := config.Root()
	if err != nil {
		return nil, fmt.Errorf("cannot determine pyenv root: %w", err)
	}

	settings, err := config.LoadSettings(root)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded settings", zap.String("root", root), zap.String("command", cmd.Name()))

	return &session{
		root:     root,
		settings: settings,
		resolver: resolve.New(root, settings, logger),
		logger:   logger,
	}, nil
}

// noVersion prints the "set a global version" hint and fails the command.
func (s *session) noVersion(cmd *cobra.Command) error {
	fmt.Fprintln(cmd.OutOrStdout(), s.settings.Messages.NoGlobal(s.settings.ExampleVersion))
	return &ExitError{Code: 1}
}

// requireInstalled prints the install hint and fails the command when
// version has no install directory.
func (s *session) requireInstalled(cmd *cobra.Command, version string) error {
	if s.resolver.IsInstalled(version) {
		return nil
	}
	s.logger.Debug("version not installed", zap.String("version", version))
	fmt.Fprintln(cmd.OutOrStdout(), s.settings.Messages.NotInstalled(version))
	return &ExitError{Code: 1}
}
