package system

import "github.com/spf13/afero"

// AppFs is the filesystem used for config loading and directory snapshots.
// Tests replace it with afero.NewMemMapFs().
var AppFs afero.Fs = afero.NewOsFs()
