// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"code.hybscloud.com/free/adventure/game"
	"code.hybscloud.com/free/adventure/transcript"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var replayChoices string

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().StringVar(&replayChoices, "choices", "", "comma-separated 1-based selections, e.g. 1,4,1")
}

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Print the transcript of a scripted play-through",
	Long: `Replay the game with a fixed list of selections and print everything
a player would have seen. Each choice is printed as its numbered options
followed by the selected option prefixed with "> ".`,
	Args: cobra.NoArgs,
	RunE: runReplay,
}

func runReplay(cmd *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	choices, err := transcript.ParseChoices(replayChoices)
	if err != nil {
		return err
	}
	t, err := transcript.Replay(game.Game(), choices)
	out := cmd.OutOrStdout()
	for _, l := range t.Lines {
		fmt.Fprintln(out, l)
	}
	if err != nil {
		s.logger.Warn("replay stopped", zap.Int("consumed", len(t.Choices)), zap.Error(err))
		return fmt.Errorf("replay: %w", err)
	}
	return nil
}
