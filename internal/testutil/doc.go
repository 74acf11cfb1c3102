// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that handle errors
// appropriately, reducing boilerplate and ensuring consistent error handling.
//
// Common helpers cover environment variables (MustSetenv, MustUnsetenv, SetHomeDir)
// and files (MustMkdirAll, MustWriteFile). The runnertest subpackage records
// external commands instead of running them.
package testutil
