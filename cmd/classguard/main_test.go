package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRunDecideAllow(t *testing.T) {
	dir := t.TempDir()
	subject := writeTempFile(t, dir, "subject.json", `{"clearance":"S","compartments":["NOFORN"],"mfa_verified":true,"session_active":true,"device_posture":"trusted"}`)
	resource := writeTempFile(t, dir, "resource.json", `{"classification":"S","compartments":["NOFORN"]}`)

	var stdout, stderr bytes.Buffer
	code := Run([]string{"classguard", "decide", subject, resource}, &stdout, &stderr)
	require.Equal(t, 0, code)
	require.Contains(t, stdout.String(), `"allowed": true`)
}

func TestRunDecideDeny(t *testing.T) {
	dir := t.TempDir()
	subject := writeTempFile(t, dir, "subject.json", `{"clearance":"U","session_active":true}`)
	resource := writeTempFile(t, dir, "resource.json", `{"classification":"S"}`)

	var stdout, stderr bytes.Buffer
	code := Run([]string{"classguard", "decide", subject, resource}, &stdout, &stderr)
	require.Equal(t, 1, code)
	require.Contains(t, stdout.String(), "Insufficient clearance")
}

func TestRunValidateRejectsUnknownField(t *testing.T) {
	dir := t.TempDir()
	pol := writeTempFile(t, dir, "policy.json", `{"name":"x","scope":"GLOBAL","is_active":true,"is_enforced":true,"bogus":1}`)

	var stdout, stderr bytes.Buffer
	code := Run([]string{"classguard", "validate", pol}, &stdout, &stderr)
	require.Equal(t, 1, code)
}

func TestRunValidateAccepts(t *testing.T) {
	dir := t.TempDir()
	pol := writeTempFile(t, dir, "policy.json", `{"name":"x","scope":"GLOBAL","is_active":true,"is_enforced":true}`)

	var stdout, stderr bytes.Buffer
	code := Run([]string{"classguard", "validate", pol}, &stdout, &stderr)
	require.Equal(t, 0, code)
	require.Contains(t, stdout.String(), "OK")
}

func TestRunUnknownCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"classguard", "bogus"}, &stdout, &stderr)
	require.Equal(t, 2, code)
}
