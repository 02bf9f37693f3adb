package model

// TaskStatus represents the status of a download task
type TaskStatus string

const (
	// TaskStatusPending means the task is accepted but its worker has not started
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusResolving means stream details are being fetched
	TaskStatusResolving TaskStatus = "Resolving"

	// TaskStatusDownloading means the transfer is in progress
	TaskStatusDownloading TaskStatus = "Downloading"

	// TaskStatusCompleted means the file was written successfully
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusError means the task failed with an error
	TaskStatusError TaskStatus = "Error"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if the task still occupies a worker
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusPending || ts == TaskStatusResolving || ts == TaskStatusDownloading
}

// IsFinished returns true if the task is in a terminal state (completed or error)
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusError
}
