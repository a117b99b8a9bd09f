package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/danmuck/tapcode/internal/observability"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [message...]",
	Short: "Encode a message into tapcode",
	Long:  "Encode a message into tapcode. Reads stdin when no message is given.",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, active, err := resolve(cmd)
		if err != nil {
			return err
		}
		message, err := inputText(cmd, args)
		if err != nil {
			return err
		}
		out, err := active.Load().Encode(message)
		observability.RecordOperation(observability.OpEncode, err)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode [tapcode...]",
	Short: "Decode tapcode into a message",
	Long:  "Decode tapcode into a message. Separate words with '|'. Reads stdin when no tapcode is given.",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, active, err := resolve(cmd)
		if err != nil {
			return err
		}
		code, err := inputText(cmd, args)
		if err != nil {
			return err
		}
		out, err := active.Load().Decode(code)
		observability.RecordOperation(observability.OpDecode, err)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd, decodeCmd)
}

// inputText joins args with spaces, or reads all of stdin when args is empty.
func inputText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.TrimSpace(strings.Join(args, " ")), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
