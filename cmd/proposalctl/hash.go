package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/proposalcraft/proposalcraft-go/internal/crypto"
	"github.com/spf13/cobra"
)

var password string

var hashCmd = &cobra.Command{
	Use:   "hash-password",
	Short: "Print an argon2id hash for OWNER_PASSWORD_HASH",
	Long:  "Hashes --password, or the first line of stdin when the flag is omitted.",
	RunE: func(cmd *cobra.Command, args []string) error {
		pw := password
		if pw == "" {
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && line == "" {
				return fmt.Errorf("read password: %w", err)
			}
			pw = strings.TrimRight(line, "\r\n")
		}

		hash, err := crypto.HashPassword(pw)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), hash)
		return nil
	},
}

func init() {
	hashCmd.Flags().StringVar(&password, "password", "", "password to hash (read from stdin when empty)")
	rootCmd.AddCommand(hashCmd)
}
