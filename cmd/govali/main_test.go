package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/govali/i18n"
)

const personRules = `
target: Person
fields:
  - name: name
    rules: [notEmpty]
  - name: age
    rules: [{greaterThan: 0}]
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	t.Cleanup(func() { i18n.SetLanguage("en") })
	var out, errb bytes.Buffer
	code := run(args, strings.NewReader(stdin), &out, &errb)
	return code, out.String(), errb.String()
}

func TestCheck_Valid(t *testing.T) {
	dir := t.TempDir()
	rules := writeFile(t, dir, "person.yaml", personRules)

	code, out, _ := runCLI(t, `{"name": "Alice", "age": 30}`, "check", "-rules", rules)

	assert.Equal(t, exitOK, code)
	assert.Equal(t, "OK: Person\n", out)
}

func TestCheck_InvalidText(t *testing.T) {
	dir := t.TempDir()
	rules := writeFile(t, dir, "person.yaml", personRules)
	doc := writeFile(t, dir, "doc.json", `{"name": "", "age": 0}`)

	code, out, _ := runCLI(t, "", "check", "-rules", rules, "-in", doc)

	assert.Equal(t, exitInvalid, code)
	assert.Equal(t, "Validation for Person failed with 2 error(s):\n"+
		" - Field 'name': must not be empty\n"+
		" - Field 'age': must be greater than 0\n", out)
}

func TestCheck_FailFastAndJSON(t *testing.T) {
	dir := t.TempDir()
	rules := writeFile(t, dir, "person.yaml", personRules)

	code, out, _ := runCLI(t, "name: ''\nage: 0\n", "check", "-rules", rules, "-fail-fast", "-format", "json")
	assert.Equal(t, exitInvalid, code)

	var got struct {
		Target   string `json:"target"`
		Valid    bool   `json:"valid"`
		Failures []struct {
			Field string `json:"field"`
			Code  string `json:"code"`
		} `json:"failures"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Person", got.Target)
	assert.False(t, got.Valid)
	require.Len(t, got.Failures, 1)
	assert.Equal(t, "name", got.Failures[0].Field)
	assert.Equal(t, "required", got.Failures[0].Code)
}

func TestCheck_Japanese(t *testing.T) {
	dir := t.TempDir()
	rules := writeFile(t, dir, "person.yaml", personRules)

	code, out, _ := runCLI(t, `{"name": "", "age": 1}`, "check", "-rules", rules, "-lang", "ja")

	assert.Equal(t, exitInvalid, code)
	assert.Contains(t, out, " - Field 'name': 空にできません\n")
}

func TestCheck_JapaneseNested(t *testing.T) {
	dir := t.TempDir()
	rules := writeFile(t, dir, "person.yaml", personRules+`
  - name: address
    fields:
      - name: zip
        rules: [notEmpty]
`)

	code, out, _ := runCLI(t, `{"name": "", "age": 1, "address": {"zip": ""}}`, "check", "-rules", rules, "-lang", "ja")

	assert.Equal(t, exitInvalid, code)
	assert.Equal(t, "Person の検証で 2 件のエラーが見つかりました:\n"+
		" - Field 'name': 空にできません\n"+
		" - Field 'address': address の検証で 1 件のエラーが見つかりました:\n"+
		" - Field 'zip': 空にできません\n"+
		"\n", out)
}

func TestCheck_EnvDefaults(t *testing.T) {
	dir := t.TempDir()
	rules := writeFile(t, dir, "person.yaml", personRules)
	envFile := writeFile(t, dir, "govali.env", "GOVALI_FORMAT=json\nGOVALI_FAIL_FAST=true\n")

	code, out, _ := runCLI(t, `{"name": "", "age": 0}`, "check", "-rules", rules, "-env", envFile)
	assert.Equal(t, exitInvalid, code)
	assert.Contains(t, out, `"target": "Person"`)

	// flags win over the environment
	code, out, _ = runCLI(t, `{"name": "", "age": 0}`, "check", "-rules", rules, "-env", envFile, "-format", "text")
	assert.Equal(t, exitInvalid, code)
	assert.Equal(t, "Validation for Person failed with 1 error(s):\n - Field 'name': must not be empty\n", out)
}

func TestCheck_ProcessEnvBeatsEnvFile(t *testing.T) {
	dir := t.TempDir()
	rules := writeFile(t, dir, "person.yaml", personRules)
	envFile := writeFile(t, dir, "govali.env", "GOVALI_FORMAT=json\n")
	t.Setenv("GOVALI_FORMAT", "text")

	_, out, _ := runCLI(t, `{"name": "", "age": 0}`, "check", "-rules", rules, "-env", envFile)
	assert.True(t, strings.HasPrefix(out, "Validation for Person"), out)
}

func TestCheck_UsageErrors(t *testing.T) {
	dir := t.TempDir()
	rules := writeFile(t, dir, "person.yaml", personRules)
	badRules := writeFile(t, dir, "bad.yaml", "fields: [{name: a, rules: [shiny]}]\n")

	for name, args := range map[string][]string{
		"no command":     {},
		"unknown":        {"frobnicate"},
		"missing rules":  {"check"},
		"bad flag":       {"check", "-nope"},
		"missing file":   {"check", "-rules", filepath.Join(dir, "missing.yaml")},
		"unknown rule":   {"check", "-rules", badRules},
		"bad format":     {"check", "-rules", rules, "-format", "xml"},
		"bad in-format":  {"check", "-rules", rules, "-in-format", "toml"},
		"missing input":  {"check", "-rules", rules, "-in", filepath.Join(dir, "nope.json")},
		"non-object doc": {"check", "-rules", rules, "-in-format", "json"},
	} {
		t.Run(name, func(t *testing.T) {
			stdin := "{}"
			if name == "non-object doc" {
				stdin = "[1]"
			}
			code, _, _ := runCLI(t, stdin, args...)
			assert.Equal(t, exitUsage, code)
		})
	}
}

func TestCheck_BadLogLevel(t *testing.T) {
	dir := t.TempDir()
	rules := writeFile(t, dir, "person.yaml", personRules)
	t.Setenv("GOVALI_LOG_LEVEL", "chatty")

	code, _, errOut := runCLI(t, "{}", "check", "-rules", rules)
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, "log level")
}

func TestCheck_DebugLogging(t *testing.T) {
	dir := t.TempDir()
	rules := writeFile(t, dir, "person.yaml", personRules)
	t.Setenv("GOVALI_LOG_LEVEL", "debug")

	code, _, errOut := runCLI(t, `{"name": "A", "age": 1}`, "check", "-rules", rules)
	assert.Equal(t, exitOK, code)
	assert.Contains(t, errOut, `"msg":"validating document"`)
	assert.Contains(t, errOut, `"msg":"validation finished"`)
}

func TestRulesCommand(t *testing.T) {
	code, out, _ := runCLI(t, "", "rules")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, strings.Split(strings.TrimSpace(out), "\n"), "notEmpty")
}
