//go:build !linux

package fsattr

import "os"

func timesFromInfo(fi os.FileInfo) Times {
	return Times{Mod: fi.ModTime()}
}
