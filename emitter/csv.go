package emitter

import (
	"compress/bzip2"
	"context"
	"fmt"
	"io"
	"iter"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/anyseat/go-anyseat-places"
	"github.com/sfomuseum/go-csvdict/v2"
)

// CSV columns, in the order `PlaceToRow` writes them.
const (
	CSVId          = "id"
	CSVName        = "name"
	CSVType        = "type"
	CSVLatitude    = "latitude"
	CSVLongitude   = "longitude"
	CSVAddress     = "address"
	CSVDescription = "description"
	CSVImages      = "images"
	CSVWifi        = "wifi"
	CSVPower       = "power"
)

// Images are stored in a single column separated by this character.
const CSVImagesSeparator = ";"

// CSVEmitter reads places from a CSV file, optionally bzip2 compressed.
//
//	csv:///usr/local/data/anyseat/places.csv
//	csv:///usr/local/data/anyseat/places.csv.bz2?bzip2=true
type CSVEmitter struct {
	Emitter
	reader     io.ReadCloser
	csv_reader io.Reader
}

func init() {

	ctx := context.Background()
	err := RegisterEmitter(ctx, "csv", NewCSVEmitter)

	if err != nil {
		panic(err)
	}
}

func NewCSVEmitter(ctx context.Context, uri string) (Emitter, error) {

	u, err := url.Parse(uri)

	if err != nil {
		return nil, err
	}

	q := u.Query()

	r, err := os.Open(u.Path)

	if err != nil {
		return nil, err
	}

	e := &CSVEmitter{
		reader:     r,
		csv_reader: r,
	}

	if q.Has("bzip2") {

		v, err := strconv.ParseBool(q.Get("bzip2"))

		if err != nil {
			r.Close()
			return nil, fmt.Errorf("Invalid ?bzip2= parameter, %w", err)
		}

		if v {
			e.csv_reader = bzip2.NewReader(r)
		}
	}

	return e, nil
}

func (e *CSVEmitter) Emit(ctx context.Context) iter.Seq2[*places.Place, error] {

	return func(yield func(*places.Place, error) bool) {

		csv_r, err := csvdict.NewReader(e.csv_reader)

		if err != nil {
			yield(nil, err)
			return
		}

		for row, err := range csv_r.Iterate() {

			if err != nil {

				if !yield(nil, err) {
					return
				}

				continue
			}

			pl, err := RowToPlace(row)

			if !yield(pl, err) {
				return
			}
		}
	}
}

func (e *CSVEmitter) Close() error {
	return e.reader.Close()
}

// RowToPlace converts a CSV row, keyed by column name, in to a `places.Place`. Empty boolean
// columns are false.
func RowToPlace(row map[string]string) (*places.Place, error) {

	lat, err := strconv.ParseFloat(row[CSVLatitude], 64)

	if err != nil {
		return nil, fmt.Errorf("Failed to parse latitude for %s, %w", row[CSVId], err)
	}

	lon, err := strconv.ParseFloat(row[CSVLongitude], 64)

	if err != nil {
		return nil, fmt.Errorf("Failed to parse longitude for %s, %w", row[CSVId], err)
	}

	wifi, err := parseOptionalBool(row[CSVWifi])

	if err != nil {
		return nil, fmt.Errorf("Failed to parse wifi for %s, %w", row[CSVId], err)
	}

	power, err := parseOptionalBool(row[CSVPower])

	if err != nil {
		return nil, fmt.Errorf("Failed to parse power for %s, %w", row[CSVId], err)
	}

	pl := &places.Place{
		Id:   row[CSVId],
		Name: row[CSVName],
		Type: places.PlaceType(row[CSVType]),
		Coordinates: places.Coordinates{
			Lat: lat,
			Lng: lon,
		},
		Address:       row[CSVAddress],
		Description:   row[CSVDescription],
		WifiAvailable: wifi,
		PowerOutlets:  power,
	}

	str_images := strings.TrimSpace(row[CSVImages])

	if str_images != "" {

		for _, im := range strings.Split(str_images, CSVImagesSeparator) {

			im = strings.TrimSpace(im)

			if im != "" {
				pl.Images = append(pl.Images, im)
			}
		}
	}

	return pl, nil
}

// PlaceToRow is the inverse of `RowToPlace`.
func PlaceToRow(pl *places.Place) map[string]string {

	row := map[string]string{
		CSVId:          pl.Id,
		CSVName:        pl.Name,
		CSVType:        string(pl.Type),
		CSVLatitude:    strconv.FormatFloat(pl.Coordinates.Lat, 'f', -1, 64),
		CSVLongitude:   strconv.FormatFloat(pl.Coordinates.Lng, 'f', -1, 64),
		CSVAddress:     pl.Address,
		CSVDescription: pl.Description,
		CSVImages:      strings.Join(pl.Images, CSVImagesSeparator),
		CSVWifi:        strconv.FormatBool(pl.WifiAvailable),
		CSVPower:       strconv.FormatBool(pl.PowerOutlets),
	}

	return row
}

func parseOptionalBool(str_v string) (bool, error) {

	str_v = strings.TrimSpace(str_v)

	if str_v == "" {
		return false, nil
	}

	return strconv.ParseBool(str_v)
}
