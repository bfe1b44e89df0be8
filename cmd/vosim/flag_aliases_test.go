package main

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestSetFlagAliases(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	var value string
	flags.StringVar(&value, "file", "", "")
	setFlagAliases(flags, map[string]string{"solution": "file"})

	if err := flags.Parse([]string{"--solution", "answer.go"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if value != "answer.go" {
		t.Errorf("expected alias to set file flag, got %q", value)
	}
}

func TestSetFlagAliases_EmptyMapLeavesFlagsAlone(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	var value string
	flags.StringVar(&value, "file", "", "")
	setFlagAliases(flags, nil)

	if err := flags.Parse([]string{"--file", "answer.go"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if value != "answer.go" {
		t.Errorf("expected file flag set, got %q", value)
	}
}
