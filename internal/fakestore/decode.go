package fakestore

import (
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/shopspring/decimal"

	"github.com/five82/storefront/internal/catalog"
)

// ErrInvalidRecord marks a well-formed record whose values cannot be used.
var ErrInvalidRecord = errors.New("invalid product record")

// SkippedRecord is a catalog entry DecodeProducts dropped.
type SkippedRecord struct {
	Index int
	Err   error
}

// DecodeProducts parses a JSON array of product records. Records that are
// well-formed JSON but invalid (no id, negative price) are dropped and
// reported in skipped; malformed JSON fails the whole array.
func DecodeProducts(data []byte) (products catalog.Catalog, skipped []SkippedRecord, err error) {
	d := jx.DecodeBytes(data)
	products = catalog.Catalog{}
	index := 0
	if err := d.Arr(func(d *jx.Decoder) error {
		defer func() { index++ }()
		p, err := decodeProduct(d)
		if errors.Is(err, ErrInvalidRecord) {
			skipped = append(skipped, SkippedRecord{Index: index, Err: err})
			return nil
		}
		if err != nil {
			return errors.Wrapf(err, "product %d", index)
		}
		products = append(products, p)
		return nil
	}); err != nil {
		return nil, nil, errors.Wrap(err, "decode products")
	}
	return products, skipped, nil
}

// DecodeProduct parses a single product record.
func DecodeProduct(data []byte) (catalog.Product, error) {
	p, err := decodeProduct(jx.DecodeBytes(data))
	if err != nil {
		return catalog.Product{}, errors.Wrap(err, "decode product")
	}
	return p, nil
}

func decodeProduct(d *jx.Decoder) (catalog.Product, error) {
	var (
		p      catalog.Product
		seenID bool
	)
	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		var err error
		switch string(key) {
		case "id":
			p.ID, err = d.Int64()
			seenID = err == nil
		case "title":
			p.Title, err = optionalStr(d)
		case "price":
			p.Price, err = decodeDecimal(d)
		case "description":
			p.Description, err = optionalStr(d)
		case "category":
			p.Category, err = optionalStr(d)
		case "image":
			p.Image, err = optionalStr(d)
		case "rating":
			p.Rating, err = decodeRating(d)
		default:
			return d.Skip()
		}
		if err != nil {
			return errors.Wrap(err, string(key))
		}
		return nil
	})
	if err != nil {
		return catalog.Product{}, err
	}
	if !seenID {
		return catalog.Product{}, errors.Wrap(ErrInvalidRecord, "missing id")
	}
	if p.Price.IsNegative() {
		return catalog.Product{}, errors.Wrapf(ErrInvalidRecord, "product %d: negative price %s", p.ID, p.Price)
	}
	return p, nil
}

func decodeRating(d *jx.Decoder) (*catalog.Rating, error) {
	if d.Next() == jx.Null {
		return nil, d.Null()
	}
	r := &catalog.Rating{}
	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		var err error
		switch string(key) {
		case "rate":
			r.Rate, err = decodeDecimal(d)
		case "count":
			r.Count, err = d.Int()
		default:
			return d.Skip()
		}
		if err != nil {
			return errors.Wrap(err, string(key))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// decodeDecimal accepts a JSON number or a numeric string without going
// through float64.
func decodeDecimal(d *jx.Decoder) (decimal.Decimal, error) {
	switch d.Next() {
	case jx.String:
		s, err := d.Str()
		if err != nil {
			return decimal.Decimal{}, err
		}
		return decimal.NewFromString(s)
	case jx.Number:
		n, err := d.Num()
		if err != nil {
			return decimal.Decimal{}, err
		}
		return decimal.NewFromString(n.String())
	default:
		return decimal.Decimal{}, errors.Errorf("unexpected %s", d.Next())
	}
}

func optionalStr(d *jx.Decoder) (string, error) {
	if d.Next() == jx.Null {
		return "", d.Null()
	}
	return d.Str()
}
