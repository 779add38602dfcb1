//go:build linux

package fsattr

import (
	"os"
	"syscall"
	"time"
)

func timesFromInfo(fi os.FileInfo) Times {
	t := Times{Mod: fi.ModTime()}
	if st, ok := fi.Sys().(*syscall.Stat_t); ok {
		change := time.Unix(st.Ctim.Sec, st.Ctim.Nsec)
		t.Change = &change
	}
	return t
}
