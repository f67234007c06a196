package drop

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/questx-lab/nftdrop/internal/model"
	"github.com/questx-lab/nftdrop/pkg/storage"
	"github.com/questx-lab/nftdrop/pkg/xcontext"
)

var reportHeader = []string{"address", "success", "error", "tx_id", "explorer_link", "time"}

// Reporter writes the results of a drop as CSV to the report directory and,
// when a bucket is configured, to object storage.
type Reporter struct {
	storage storage.Storage
	now     func() time.Time
}

func NewReporter(storage storage.Storage) *Reporter {
	return &Reporter{storage: storage, now: time.Now}
}

// Write returns where the report was stored: the object URL when uploaded,
// otherwise the local path. It returns an empty location when neither a
// directory nor a bucket is configured.
func (r *Reporter) Write(ctx context.Context, summary *model.DropSummary) (string, error) {
	cfg := xcontext.Configs(ctx)
	if cfg.Report.Dir == "" && (cfg.Report.Bucket == "" || r.storage == nil) {
		return "", nil
	}

	now := r.now()
	data, err := encodeReport(summary.Results, cfg.Drop.ExplorerURL, now)
	if err != nil {
		return "", err
	}

	fileName := fmt.Sprintf("%s-%s-%s.csv", cfg.Report.Prefix, now.UTC().Format("20060102T150405"), summary.RunID)

	location := ""
	if cfg.Report.Dir != "" {
		if err := os.MkdirAll(cfg.Report.Dir, 0o755); err != nil {
			return "", err
		}

		location = filepath.Join(cfg.Report.Dir, fileName)
		if err := os.WriteFile(location, data, 0o644); err != nil {
			return "", err
		}
	}

	if cfg.Report.Bucket != "" && r.storage != nil {
		resp, err := r.storage.Upload(ctx, &storage.UploadObject{
			Bucket:   cfg.Report.Bucket,
			Prefix:   cfg.Report.Prefix,
			FileName: fileName,
			Mime:     "text/csv",
			Data:     data,
		})
		if err != nil {
			return location, err
		}

		location = resp.Url
	}

	xcontext.Logger(ctx).Infof("Report of drop %s written to %s", summary.RunID, location)
	return location, nil
}

func encodeReport(results []model.TransferResult, explorerURL string, now time.Time) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	if err := w.Write(reportHeader); err != nil {
		return nil, err
	}

	timestamp := now.UTC().Format(time.RFC3339)
	for _, r := range results {
		row := []string{
			r.Address,
			strconv.FormatBool(r.Success),
			r.Err,
			r.TxID,
			ExplorerLink(explorerURL, r.TxID),
			timestamp,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
