// SPDX-License-Identifier: MPL-2.0

// Package provision creates and removes per-project Python virtualenvs.
//
// A project that declares a virtualenv gets one at <virtualenvs dir>/<session name>
// (or at its custom path). The directory's existence is the only cache key: an
// existing virtualenv is reused until a rebuild is requested.
package provision
