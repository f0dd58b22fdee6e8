// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"code.hybscloud.com/free/adventure/game"
	"code.hybscloud.com/free/adventure/tui"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(tuiCmd)
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Play in the terminal interface",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.Close()
		return tui.Run(game.Game(),
			tui.WithLogger(s.logger),
			tui.WithInput(cmd.InOrStdin()),
			tui.WithOutput(cmd.OutOrStdout()),
			tui.WithAltScreen())
	},
}
