// Command build compiles chimera-format. With a directory argument the binary
// is written there instead of bin/, which is how it gets installed next to
// chimera_clangformat.json in a project's tools directory.
package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

func version() string {
	cmd := exec.Command("git", "describe", "--tags", "--always", "--dirty")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return "dev"
	}
	return strings.TrimSpace(out.String())
}

func main() {
	binaryName := "chimera-format"
	if runtime.GOOS == "windows" {
		binaryName += ".exe"
	}

	outDir := "bin"
	if len(os.Args) > 1 {
		outDir = os.Args[1]
	}

	v := version()
	ldflags := fmt.Sprintf("-X github.com/chimera-tools/chimera-format/internal/app.Version=%s", v)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Printf("❌ Failed to create %s: %v\n", outDir, err)
		os.Exit(1)
	}

	outputPath := filepath.Join(outDir, binaryName)
	fmt.Printf("Building %s...\n", v)

	cmd := exec.Command("go", "build", "-ldflags", ldflags, "-o", outputPath, "./cmd/chimera-format")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		fmt.Printf("❌ Build failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Build complete: %s\n", outputPath)
}
