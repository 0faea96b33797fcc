package projections

import (
	"context"
	"time"

	"github.com/influxdata/influxdb/client/v2"
	"github.com/pkg/errors"

	"github.com/retro-framework/go-archglob/framework/archglob"
	"github.com/retro-framework/go-archglob/framework/types"
)

const influxMeasurement = "globs"

type pointWriter interface {
	Write(client.BatchPoints) error
}

// Influx writes one point per glob into the "globs" measurement, tagged
// with the outcome and scheme, carrying the match count and duration.
type Influx struct {
	w      pointWriter
	db     string
	scheme string
	log    types.Logger
	now    func() time.Time
}

// NewInflux connects to addr and makes sure the database exists.
func NewInflux(addr, db, scheme string, log types.Logger) (*Influx, error) {
	c, err := client.NewHTTPClient(client.HTTPConfig{Addr: addr})
	if err != nil {
		return nil, errors.Wrap(err, "can't create influxdb client")
	}
	res, err := c.Query(client.NewQuery("CREATE DATABASE "+db, "", ""))
	if err != nil {
		return nil, errors.Wrap(err, "can't create influxdb database")
	}
	if res.Error() != nil {
		return nil, errors.Wrap(res.Error(), "can't create influxdb database")
	}
	return &Influx{w: c, db: db, scheme: scheme, log: log, now: time.Now}, nil
}

func (i *Influx) Observe(_ context.Context, res archglob.Result) {
	bp, err := client.NewBatchPoints(client.BatchPointsConfig{
		Database:  i.db,
		Precision: "ms",
	})
	if err != nil {
		i.log.Errorf("projection(influx): %s", err)
		return
	}
	var (
		tags = map[string]string{
			"outcome": res.Outcome.String(),
			"scheme":  i.scheme,
		}
		fields = map[string]interface{}{
			"matches":     len(res.Paths),
			"duration_ms": float64(res.Duration) / float64(time.Millisecond),
		}
	)
	pt, err := client.NewPoint(influxMeasurement, tags, fields, i.now())
	if err != nil {
		i.log.Errorf("projection(influx): %s", err)
		return
	}
	bp.AddPoint(pt)
	if err := i.w.Write(bp); err != nil {
		i.log.Errorf("projection(influx): err writing to influxdb: %s", err)
	}
}
