package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/usetempo/agentenv"
	"github.com/usetempo/agentenv/internal/cliconf"
)

// Execute runs the agentenv root command with all subcommands registered.
func Execute(version string) error {
	rootCmd := &cobra.Command{
		Use:     "agentenv",
		Short:   "Detect autonomous coding agents driving the current process",
		Long: "agentenv inspects environment variables and the ancestor process\n" +
			"chain to tell whether an autonomous coding agent (Claude Code,\n" +
			"Copilot, Cursor, Codex, ...) is driving the current process.\n\n" +
			"All signals are spoofable. Use the answer for UX decisions, never\n" +
			"for security ones.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newDetectCmd(),
		newCheckCmd(),
		newIsCmd(),
		newToolsCmd(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "agentenv:", err)
	}
	return err
}

func loadConfig() *cliconf.Config {
	cfg, err := cliconf.Load()
	if err != nil {
		// A broken config file should not break detection.
		fmt.Fprintln(os.Stderr, "agentenv: ignoring config:", err)
		return &cliconf.Config{MaxDepth: 10}
	}
	return cfg
}

func newDetectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Report the detected tool, confidence, and evidence",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			result := agentenv.Detect(agentenv.MaxAncestorDepth(cfg.MaxDepth))

			jsonFlag, _ := cmd.Flags().GetBool("json")
			if jsonFlag || cfg.JSON {
				return printJSON(result)
			}
			printResult(cmd.OutOrStdout(), result, cfg.NoColor)
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "Output in JSON format")
	return cmd
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Exit 0 if an agent is detected, 1 otherwise",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			result := agentenv.Detect(agentenv.MaxAncestorDepth(cfg.MaxDepth))
			if result == nil {
				os.Exit(1)
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Tool)
			return nil
		},
	}
}

func newIsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "is <tool>",
		Short: "Exit 0 if the detected tool matches, 1 otherwise",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tool := agentenv.Tool(args[0])
			if !tool.Valid() {
				return fmt.Errorf("unknown tool %q (see 'agentenv tools')", args[0])
			}
			cfg := loadConfig()
			if !agentenv.IsTool(tool, agentenv.MaxAncestorDepth(cfg.MaxDepth)) {
				os.Exit(1)
			}
			return nil
		},
	}
}

func newToolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the supported tool identifiers",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, t := range agentenv.Tools() {
				fmt.Fprintln(cmd.OutOrStdout(), t)
			}
			return nil
		},
	}
}

func printJSON(result *agentenv.Result) error {
	if result == nil {
		fmt.Println("null")
		return nil
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
