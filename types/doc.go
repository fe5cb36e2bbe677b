// Package types provides core types shared across the flownet runtime.
// This package has ZERO dependencies on other flownet packages to avoid
// circular imports. All other packages should import types from here.
package types
