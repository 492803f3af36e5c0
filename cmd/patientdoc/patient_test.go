package main

import (
	"bytes"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"patientdoc/internal/storage"
)

// runCommand executes a fresh root command against the patients file at path.
func runCommand(t *testing.T, path string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("PATIENTS_FILE", path)
	wd, wdErr := os.Getwd()
	if wdErr != nil {
		t.Fatalf("failed to get working directory: %v", wdErr)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("failed to change directory: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writePatientsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "patients.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write patients file: %v", err)
	}
	return path
}

func readPatientsFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read patients file: %v", err)
	}
	return string(data)
}

const threePatients = "Alice,30,60,165,flu,,,Female\nBob,40,80,180,,,,Male\nCarol,50,70,170,,,,Female\n"

func TestListCommand(t *testing.T) {
	path := writePatientsFile(t, threePatients)

	tests := []struct {
		name     string
		args     []string
		want     []string
		dontWant []string
	}{
		{
			name: "all",
			args: []string{"list"},
			want: []string{"FULL NAME", "Alice", "Bob", "Carol", "3 of 3 patients"},
		},
		{
			name:     "filtered",
			args:     []string{"list", "--query", "BO"},
			want:     []string{"0  Bob", "1 of 3 patients"},
			dontWant: []string{"Alice", "Carol"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCommand(t, path, tt.args...)
			if err != nil {
				t.Fatalf("%v error = %v", tt.args, err)
			}
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("%v output missing %q:\n%s", tt.args, want, out)
				}
			}
			for _, unwanted := range tt.dontWant {
				if strings.Contains(out, unwanted) {
					t.Errorf("%v output contains %q:\n%s", tt.args, unwanted, out)
				}
			}
		})
	}
}

func TestListCommand_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.csv")

	out, err := runCommand(t, path, "list")
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	if !strings.Contains(out, "0 of 0 patients") {
		t.Errorf("list output = %q, want empty list", out)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("list created the patients file, stat error = %v", err)
	}
}

func TestAddCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "patients.csv")

	out, err := runCommand(t, path, "add", "--name", "Jana, Nová", "--age", "34", "--sex", "Female")
	if err != nil {
		t.Fatalf("add error = %v", err)
	}
	if !strings.Contains(out, "Data saved.") {
		t.Errorf("add output = %q, want save notice", out)
	}

	want := "\"Jana, Nová\",34,,,,,,Female\n"
	if got := readPatientsFile(t, path); got != want {
		t.Errorf("patients file = %q, want %q", got, want)
	}
}

func TestUpdateCommand(t *testing.T) {
	path := writePatientsFile(t, threePatients)

	if _, err := runCommand(t, path, "update", "1", "--diagnosis", "angina", "--age", "41"); err != nil {
		t.Fatalf("update error = %v", err)
	}

	want := "Alice,30,60,165,flu,,,Female\nBob,41,80,180,angina,,,Male\nCarol,50,70,170,,,,Female\n"
	if got := readPatientsFile(t, path); got != want {
		t.Errorf("patients file = %q, want %q", got, want)
	}
}

func TestUpdateCommand_KeepsUntouchedFields(t *testing.T) {
	path := writePatientsFile(t, "Ann ,30, 70 ,170,flu,,, Female\n")

	if _, err := runCommand(t, path, "update", "0", "--age", "31"); err != nil {
		t.Fatalf("update error = %v", err)
	}

	reloaded, err := storage.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := storage.Patient{
		FullName: "Ann ", Age: "31", WeightKg: " 70 ", HeightCm: "170",
		Diagnosis: "flu", Sex: " Female",
	}
	if len(reloaded) != 1 || reloaded[0] != want {
		t.Errorf("reloaded = %#v, want %#v", reloaded, want)
	}
}

func TestUpdateCommand_BadIndex(t *testing.T) {
	path := writePatientsFile(t, threePatients)

	for _, arg := range []string{"3", "-1", "x"} {
		if _, err := runCommand(t, path, "update", "--name", "Zed", "--", arg); err == nil {
			t.Errorf("update %s error = nil, want error", arg)
		}
	}
	if got := readPatientsFile(t, path); got != threePatients {
		t.Errorf("patients file changed to %q", got)
	}
}

func TestDeleteCommand_AfterSearch(t *testing.T) {
	path := writePatientsFile(t, threePatients)

	out, err := runCommand(t, path, "delete", "0", "--query", "bo")
	if err != nil {
		t.Fatalf("delete error = %v", err)
	}
	if !strings.Contains(out, "Deleted Bob.") {
		t.Errorf("delete output = %q, want Bob deleted", out)
	}

	want := "Alice,30,60,165,flu,,,Female\nCarol,50,70,170,,,,Female\n"
	if got := readPatientsFile(t, path); got != want {
		t.Errorf("patients file = %q, want %q", got, want)
	}
}

func TestDeleteCommand_OutOfRange(t *testing.T) {
	path := writePatientsFile(t, threePatients)

	if _, err := runCommand(t, path, "delete", "1", "--query", "bo"); err == nil {
		t.Fatal("delete error = nil, want error")
	}
	if got := readPatientsFile(t, path); got != threePatients {
		t.Errorf("patients file changed to %q", got)
	}
}

func TestExportCommand(t *testing.T) {
	path := writePatientsFile(t, threePatients)
	dbPath := filepath.Join(t.TempDir(), "export.db")

	out, err := runCommand(t, path, "export", dbPath)
	if err != nil {
		t.Fatalf("export error = %v", err)
	}
	if !strings.Contains(out, "Exported 3 patients") {
		t.Errorf("export output = %q", out)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("sql.Open() error = %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM patients").Scan(&count); err != nil {
		t.Fatalf("count query error = %v", err)
	}
	if count != 3 {
		t.Errorf("exported rows = %d, want 3", count)
	}
}

func TestRootCommand_InvalidConfig(t *testing.T) {
	path := writePatientsFile(t, threePatients)
	t.Setenv("LOG_FORMAT", "xml")

	if _, err := runCommand(t, path, "list"); err == nil {
		t.Fatal("Execute() error = nil, want configuration error")
	}
}

func TestRootCommand_FileFlagSkipsEnvDataDir(t *testing.T) {
	envDir := filepath.Join(t.TempDir(), "unused")
	path := writePatientsFile(t, threePatients)

	if _, err := runCommand(t, filepath.Join(envDir, "patients.csv"), "--file", path, "list"); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if _, err := os.Stat(envDir); !os.IsNotExist(err) {
		t.Errorf("PATIENTS_FILE directory was created although --file overrides it, stat error = %v", err)
	}
}

func TestRootCommand_FileFlagCreatesDataDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "patients.csv")

	if _, err := runCommand(t, writePatientsFile(t, threePatients), "--file", path, "add", "--name", "Ann"); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("patients file not written under --file directory: %v", err)
	}
}

func TestServeCommand_InvalidPort(t *testing.T) {
	for _, port := range []string{"70000", "0", "abc", "-1"} {
		t.Run(port, func(t *testing.T) {
			path := writePatientsFile(t, threePatients)
			_, err := runCommand(t, path, "serve", "--port", port)
			if err == nil || !strings.Contains(err.Error(), "--port must be a port number") {
				t.Fatalf("Execute() error = %v, want port validation error", err)
			}
		})
	}
}

func TestParseIndex(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "0", want: 0},
		{in: "12", want: 12},
		{in: "-1", wantErr: true},
		{in: "one", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseIndex(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseIndex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseIndex(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}
