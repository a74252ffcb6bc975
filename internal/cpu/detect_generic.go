//go:build !arm64

package cpu

import "runtime"

// detectFeaturesImpl reports no accelerated features on architectures
// without a dedicated kernel set; the portable implementations are
// used unconditionally.
func detectFeaturesImpl() Features {
	return Features{
		Architecture: runtime.GOARCH,
	}
}
