package main

import (
	"fmt"
	"runtime/debug"
	"strings"
)

type versionCmd struct{}

func (t versionCmd) Run(g *Global) (err error) {
	var (
		ok    bool
		info  *debug.BuildInfo
		rev   string
		dirty bool
	)

	if info, ok = debug.ReadBuildInfo(); !ok {
		_, err = fmt.Fprintln(g.Stdout, "lvmat (unknown build)")
		return err
	}

	for _, v := range info.Settings {
		switch v.Key {
		case "vcs.revision":
			rev = v.Value
		case "vcs.modified":
			dirty = v.Value == "true"
		}
	}

	fields := []string{"lvmat"}
	for _, f := range []string{info.Main.Path, info.Main.Version, rev, info.GoVersion} {
		if f != "" {
			fields = append(fields, f)
		}
	}

	if _, err = fmt.Fprintln(g.Stdout, strings.Join(fields, " ")); err != nil {
		return err
	}

	if dirty {
		if _, err = fmt.Fprintln(g.Stdout, g.colors().Red("unsupported modified build")); err != nil {
			return err
		}
	}

	return nil
}
