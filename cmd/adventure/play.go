// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"code.hybscloud.com/free/adventure/console"
	"code.hybscloud.com/free/adventure/game"
	"github.com/spf13/cobra"
)

var playScript string

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().StringVar(&playScript, "script", "", "read selections from this file instead of stdin")
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the line console",
	Long: `Play in the line console.

Selections are read from stdin, one 1-based number per line. With --script
they are read from a file instead, and the game ends with an error if the
file runs out before the game does.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if playScript == "" {
		return playConsole(cmd.InOrStdin(), cmd.OutOrStdout(), s.logger)
	}

	f, err := os.Open(playScript)
	if err != nil {
		return fmt.Errorf("play: open script: %w", err)
	}
	defer f.Close()

	feed := console.FeedFrom(f)
	if err := console.Run(game.Game(), feed, cmd.OutOrStdout(), console.WithLogger(s.logger)); err != nil {
		return fmt.Errorf("play: %w", err)
	}
	return nil
}
