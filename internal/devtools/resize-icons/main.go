// © 2026 The DC Comics Authors. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dremio/dc-comics-site/internal/devtools"

	"go.astrophena.name/base/cli"
)

func main() { cli.Main(new(app)) }

type app struct {
	size int
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.IntVar(&a.size, "size", 120, "Side of the square icon in `pixels`.")
}

func (a *app) Run(ctx context.Context) error {
	devtools.EnsureRoot()

	if _, err := exec.LookPath("magick"); err != nil {
		return errors.New("ImageMagick (magick command) not found")
	}

	args := cli.GetEnv(ctx).Args
	if len(args) != 2 {
		return fmt.Errorf("%w: want input image and icon name", cli.ErrInvalidArgs)
	}
	input, name := args[0], args[1]

	absInput, err := filepath.Abs(input)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for input file: %w", err)
	}
	if _, err := os.Stat(absInput); os.IsNotExist(err) {
		return fmt.Errorf("input file %s not found", absInput)
	}

	output := iconPath(name)
	cmd := exec.CommandContext(ctx, "magick", magickArgs(absInput, output, a.size)...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to resize icon %s: %w", name, err)
	}
	return nil
}

// iconPath returns where the feature icon called name is stored.
func iconPath(name string) string {
	name = strings.TrimSuffix(name, filepath.Ext(name))
	return filepath.Join("static", "img", name+".png")
}

// magickArgs returns ImageMagick arguments that fit input into a transparent
// square of the given size.
func magickArgs(input, output string, size int) []string {
	s := strconv.Itoa(size)
	return []string{
		input,
		"-resize", s + "x" + s,
		"-background", "none",
		"-gravity", "center",
		"-extent", s + "x" + s,
		"-strip",
		output,
	}
}
