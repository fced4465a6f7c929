package cmd

import "testing"

func TestBatchFlagsScopedToBatchCommands(t *testing.T) {
	for _, name := range []string{"input", "output"} {
		if rootCmd.Flags().Lookup(name) == nil {
			t.Errorf("root command is missing --%s", name)
		}
		if runCmd.Flags().Lookup(name) == nil {
			t.Errorf("run command is missing --%s", name)
		}
		if serveCmd.Flags().Lookup(name) != nil {
			t.Errorf("serve command should not carry --%s", name)
		}
		if serveCmd.InheritedFlags().Lookup(name) != nil {
			t.Errorf("serve command inherits --%s", name)
		}
	}
}
