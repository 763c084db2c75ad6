// Package errors provides the error types and exit codes shared by workspaces commands.
//
// Resolution errors:
//   - PackageNotInWorkspaceError: a member manifest lies outside the workspace root (fatal)
//   - PackageNotFoundError: a declared member has no package record (reported, not fatal)
//   - ErrEmptyWorkspace: nothing was left to list after filtering (fatal)
//
// Command errors:
//   - ExitError: Command exit with specific exit code
//   - MetadataError: the metadata provider failed or returned unusable data
//   - WriteError: the output sink rejected a write
//
// Error Display:
//
//	errors.PrintError(os.Stderr, err)
//
// Exit Codes:
//   - ExitSuccess (0): All operations completed successfully
//   - ExitFailure (2): Resolution, metadata or output failure
//   - ExitConfigError (3): Configuration or flag validation error
package errors
