// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command adventure plays the supermarket text adventure.
package main

import (
	"fmt"
	"io"
	"os"

	"code.hybscloud.com/free/adventure/console"
	"code.hybscloud.com/free/adventure/game"
	"code.hybscloud.com/free/adventure/tui"
	"code.hybscloud.com/free/internal/config"
	"code.hybscloud.com/free/internal/logging"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var configPath string

var rootCmd = &cobra.Command{
	Use:   "adventure",
	Short: "Buy a sausage roll with pickle",
	Long: `Play a short text adventure in a supermarket.

Without a subcommand the configured front end is used. The "auto" front end
picks the terminal interface when both stdin and stdout are terminals, and
the line console otherwise.`,
	SilenceUsage: true,
	RunE:         runRoot,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
}

// session holds what every subcommand needs.
type session struct {
	cfg    *config.Config
	logger *zap.Logger
	close  func() error
}

func openSession() (*session, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	logger, closeFn, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}
	return &session{cfg: cfg, logger: logger, close: closeFn}, nil
}

func (s *session) Close() {
	_ = s.logger.Sync()
	_ = s.close()
}

func runRoot(cmd *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	frontend := s.cfg.Frontend
	if frontend == config.FrontendAuto {
		frontend = detectFrontend(os.Stdin, os.Stdout)
	}
	s.logger.Debug("frontend selected", zap.String("frontend", frontend))
	if frontend == config.FrontendTUI {
		return tui.Run(game.Game(), tui.WithLogger(s.logger), tui.WithAltScreen())
	}
	return playConsole(cmd.InOrStdin(), cmd.OutOrStdout(), s.logger)
}

// detectFrontend picks the terminal interface for interactive sessions.
func detectFrontend(in, out *os.File) string {
	if isTerminal(in) && isTerminal(out) {
		return config.FrontendTUI
	}
	return config.FrontendConsole
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func playConsole(in io.Reader, out io.Writer, logger *zap.Logger) error {
	if err := console.Run(game.Game(), console.NewReader(in), out, console.WithLogger(logger)); err != nil {
		return fmt.Errorf("play: %w", err)
	}
	return nil
}
