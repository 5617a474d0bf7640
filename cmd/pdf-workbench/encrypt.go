// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pdf-workbench/internal/secrets"
)

var encryptCmd = &cobra.Command{
	Use:   "encrypt [files...]",
	Short: "Password-protect PDFs",
	Long: `Encrypt protects each input with a user password. The owner password
defaults to the user password. Passwords may come from flags or from the
pdf-password and pdf-owner-password files in the secrets directory.

The cipher and key length come from the encryption configuration
(AES-256 by default).`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEncrypt,
}

func runEncrypt(cmd *cobra.Command, args []string) error {
	user, _ := cmd.Flags().GetString("user-password")
	owner, _ := cmd.Flags().GetString("owner-password")
	user = secrets.Password(loadedSecrets, secrets.PasswordKey, user)
	owner = secrets.Password(loadedSecrets, secrets.OwnerPasswordKey, owner)
	if user == "" {
		return fmt.Errorf("encrypt needs a password: use --user-password or %s/%s", secrets.DefaultDir, secrets.PasswordKey)
	}

	r, err := startRun(cmd, "encrypt", args)
	if err != nil {
		return err
	}
	res, err := r.runner.Encrypt(cmd.Context(), r.sess, user, owner)
	if err == nil {
		err = r.writeBatch(res)
	}
	return r.finishBatch(res, err)
}

func init() {
	encryptCmd.Flags().String("user-password", "", "password required to open the output")
	encryptCmd.Flags().String("owner-password", "", "owner password (default: the user password)")

	rootCmd.AddCommand(encryptCmd)
}
