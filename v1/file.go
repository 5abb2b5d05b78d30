package v1

import "context"

// FileDirectory is a directory in the script-accessible area of host
// storage. Scripts receive their root directory from Host.Storage.
type FileDirectory interface {
	Name() string
	Path() string

	// Files lists the files directly inside the directory.
	Files(ctx context.Context) ([]File, error)

	// Directories lists the immediate subdirectories.
	Directories(ctx context.Context) ([]FileDirectory, error)

	// File returns the named file, or ErrNotFound.
	File(ctx context.Context, name string) (File, error)

	// CreateFile creates a file with the given content. Fails with
	// ErrAlreadyExists when the name is taken.
	CreateFile(ctx context.Context, name string, data []byte) (File, error)

	// Subdirectory returns the named subdirectory, or ErrNotFound.
	Subdirectory(ctx context.Context, name string) (FileDirectory, error)

	// CreateSubdirectory creates a subdirectory.
	CreateSubdirectory(ctx context.Context, name string) (FileDirectory, error)

	// Delete removes the directory. A non-empty directory is only removed
	// when recursive is set.
	Delete(ctx context.Context, recursive bool) error
}

// File is a file in host storage.
type File interface {
	Name() string
	Path() string
	Extension() string

	Size(ctx context.Context) (int64, error)
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error

	// CopyTo copies the file into the target directory and returns the
	// copy.
	CopyTo(ctx context.Context, dir FileDirectory) (File, error)

	// MoveTo moves the file into the target directory.
	MoveTo(ctx context.Context, dir FileDirectory) (File, error)

	Delete(ctx context.Context) error
}
