package download

import "github.com/ytget/yt-downloader/internal/model"

// Downloader defines the interface for the download coordinator.
type Downloader interface {
	SetUpdateCallback(func(*model.DownloadTask))
	Download(rawURL string, variant model.Variant) (*model.DownloadTask, error)
	GetTask(id string) (*model.DownloadTask, bool)
	GetAllTasks() []*model.DownloadTask
	Wait()
}

