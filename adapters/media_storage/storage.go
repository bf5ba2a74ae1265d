package media_storage

import (
	"fmt"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

// NewUploader builds the storage service selected by storage.driver.
func NewUploader(cfg config.Config, log logger.Logger) (service.Uploader, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverCloudinary, "":
		return NewCloudinaryAdapter(cfg, log)
	case config.StorageDriverMinIO:
		return NewMinIOAdapter(cfg, log)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
