package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/modu-ai/scaffold/pkg/version"
)

func TestRootCmd_Use(t *testing.T) {
	if rootCmd.Use != "scaffold" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "scaffold")
	}
	if rootCmd.Short == "" || rootCmd.Long == "" {
		t.Error("root command should be documented")
	}
}

func TestRootCmd_HasNewSubcommand(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "new" {
			found = true
			break
		}
	}
	if !found {
		t.Error("new should be registered as a subcommand of root")
	}
}

func TestRootCmd_VerboseIsPersistent(t *testing.T) {
	if rootCmd.PersistentFlags().Lookup("verbose") == nil {
		t.Error("root command should have a persistent --verbose flag")
	}
}

func TestRootCmd_Version(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"--version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	if err := Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !strings.Contains(buf.String(), version.GetVersion()) {
		t.Errorf("version output = %q", buf.String())
	}
}
