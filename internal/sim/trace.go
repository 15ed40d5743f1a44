package sim

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

var ErrBadRecord = errors.New("malformed trace record")

type Op uint8

const (
	OpAccess Op = iota
	OpInvalidate
)

type Record struct {
	Op   Op
	Addr uint64
}

// ParseTrace reads one record per line:
//
//	<addr>
//	R <addr> | W <addr>
//	I <addr>
//
// Addresses are decimal or 0x-prefixed hex. Any other token is treated as a
// symbolic key and hashed to an address. Blank lines and # comments are skipped.
func ParseTrace(r io.Reader) ([]Record, error) {
	records := []Record{}
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		var rec Record
		switch len(fields) {
		case 1:
			rec = Record{Op: OpAccess, Addr: parseAddr(fields[0])}
		case 2:
			switch strings.ToUpper(fields[0]) {
			case "R", "W":
				rec.Op = OpAccess
			case "I":
				rec.Op = OpInvalidate
			default:
				return nil, fmt.Errorf("line %d: %w: unknown op %q", n, ErrBadRecord, fields[0])
			}
			rec.Addr = parseAddr(fields[1])
		default:
			return nil, fmt.Errorf("line %d: %w: %d fields", n, ErrBadRecord, len(fields))
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func parseAddr(s string) uint64 {
	if v, err := strconv.ParseUint(s, 0, 64); err == nil {
		return v
	}
	return xxhash.Sum64String(s)
}

// Replay feeds records to the cache in order.
func Replay(c *Cache, records []Record) {
	for _, rec := range records {
		switch rec.Op {
		case OpAccess:
			c.Access(rec.Addr)
		case OpInvalidate:
			c.Invalidate(rec.Addr)
		}
	}
}

// Zipf generates n accesses over [0, imax] line numbers scaled by lineSize.
func Zipf(seed int64, s, v float64, imax uint64, n int, lineSize int) []Record {
	z := rand.NewZipf(rand.New(rand.NewSource(seed)), s, v, imax)
	records := make([]Record, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, Record{Op: OpAccess, Addr: z.Uint64() * uint64(lineSize)})
	}
	return records
}

// Scan generates a sequential sweep over n distinct lines starting at base.
func Scan(base uint64, n int, lineSize int) []Record {
	records := make([]Record, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, Record{Op: OpAccess, Addr: base + uint64(i*lineSize)})
	}
	return records
}
