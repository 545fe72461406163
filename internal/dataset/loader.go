package dataset

import (
	"bytes"
	"context"
	"encoding/json"
	"os"

	"golang.org/x/sync/errgroup"
	textenc "golang.org/x/text/encoding/unicode"

	domerrors "github.com/omarmubaidin/htu-infobot-go/internal/errors"
	"github.com/omarmubaidin/htu-infobot-go/internal/logger"
)

// Load reads both datasets concurrently. A missing or unparseable file
// degrades to an empty dataset rather than failing startup: every lookup
// against it then resolves to "no match", which is the contract the
// resolvers rely on.
func Load(ctx context.Context, catalogPath, directoryPath string, log *logger.Logger) (Catalog, Directory) {
	var (
		catalog   Catalog
		directory Directory
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		catalog, err = LoadCatalog(catalogPath)
		if err != nil {
			log.WithModule("dataset").WithError(err).
				WithField("path", catalogPath).
				Warn("Catalog unavailable, subject and study plan lookups disabled")
		}
		return nil
	})
	g.Go(func() error {
		var err error
		directory, err = LoadDirectory(directoryPath)
		if err != nil {
			log.WithModule("dataset").WithError(err).
				WithField("path", directoryPath).
				Warn("Directory unavailable, professor lookups disabled")
		}
		return nil
	})
	_ = g.Wait()

	if catalog == nil {
		catalog = Catalog{}
	}
	if directory == nil {
		directory = Directory{}
	}
	return catalog, directory
}

// LoadCatalog reads the study plan catalog from a JSON file.
// Returns an empty catalog together with the error on failure.
func LoadCatalog(path string) (Catalog, error) {
	raw, err := readTextFile(path)
	if err != nil {
		return Catalog{}, domerrors.NewDatasetError(path, err)
	}

	var catalog Catalog
	if err := json.Unmarshal(raw, &catalog); err != nil {
		return Catalog{}, domerrors.NewDatasetError(path, err)
	}
	return catalog, nil
}

// LoadDirectory reads the professor directory from a JSON file.
// Returns an empty directory together with the error on failure.
func LoadDirectory(path string) (Directory, error) {
	raw, err := readTextFile(path)
	if err != nil {
		return Directory{}, domerrors.NewDatasetError(path, err)
	}

	var directory Directory
	if err := json.Unmarshal(raw, &directory); err != nil {
		return Directory{}, domerrors.NewDatasetError(path, err)
	}
	return directory, nil
}

// readTextFile reads a file and recovers common encoding problems in the
// source datasets: a UTF-8 BOM is stripped, and UTF-16 files (either
// endianness, identified by BOM) are transcoded to UTF-8.
func readTextFile(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if bytes.HasPrefix(raw, []byte{0xEF, 0xBB, 0xBF}) {
		return raw[3:], nil
	}

	if bytes.HasPrefix(raw, []byte{0xFF, 0xFE}) || bytes.HasPrefix(raw, []byte{0xFE, 0xFF}) {
		decoder := textenc.UTF16(textenc.LittleEndian, textenc.UseBOM).NewDecoder()
		decoded, err := decoder.Bytes(raw)
		if err != nil {
			return nil, err
		}
		return decoded, nil
	}

	return raw, nil
}
