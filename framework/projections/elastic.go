package projections

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/olivere/elastic"
	"github.com/pkg/errors"

	"github.com/retro-framework/go-archglob/framework/archglob"
	"github.com/retro-framework/go-archglob/framework/ctxkey"
	"github.com/retro-framework/go-archglob/framework/types"
)

var mapping = `
{
	"settings": {
		"number_of_shards": 1,
		"number_of_replicas": 0
	},
	"mappings": {
		"_doc": {
			"properties": {
				"at":          { "type": "date" },
				"pattern":     { "type": "keyword" },
				"archive":     { "type": "keyword" },
				"outcome":     { "type": "keyword" },
				"request_id":  { "type": "keyword" },
				"matches":     { "type": "integer" },
				"duration_ms": { "type": "float" },
				"error":       { "type": "text" }
			}
		}
	}
}`

type auditDoc struct {
	At         time.Time `json:"at"`
	Pattern    string    `json:"pattern"`
	Archive    string    `json:"archive"`
	Outcome    string    `json:"outcome"`
	RequestID  string    `json:"request_id"`
	Matches    int       `json:"matches"`
	DurationMS float64   `json:"duration_ms"`
	Error      string    `json:"error,omitempty"`
}

// Elastic indexes an audit document per glob, useful to find out which
// plugin patterns are hot or broken across a fleet.
type Elastic struct {
	client *elastic.Client
	index  string
	log    types.Logger
	now    func() time.Time
}

// NewElastic dials url and creates the index unless it exists.
func NewElastic(ctx context.Context, url, index string, log types.Logger) (*Elastic, error) {
	client, err := elastic.NewClient(
		elastic.SetSniff(false),
		elastic.SetHealthcheck(false),
		elastic.SetURL(url),
		elastic.SetErrorLog(stdLog("es-archglob: ")),
	)
	if err != nil {
		return nil, errors.Wrap(err, "can't dial elasticsearch")
	}

	exists, err := client.IndexExists(index).Do(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "can't check for existence of index")
	}
	if !exists {
		created, err := client.CreateIndex(index).Body(mapping).Do(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "can't create index")
		}
		if !created.Acknowledged {
			return nil, errors.New("elasticsearch did not acknowledge creation of index")
		}
	}
	return &Elastic{client: client, index: index, log: log, now: time.Now}, nil
}

func (e *Elastic) Observe(ctx context.Context, res archglob.Result) {
	var doc = auditDoc{
		At:         e.now().UTC(),
		Pattern:    res.Pattern,
		Archive:    res.Archive,
		Outcome:    res.Outcome.String(),
		RequestID:  ctxkey.RequestID(ctx),
		Matches:    len(res.Paths),
		DurationMS: float64(res.Duration) / float64(time.Millisecond),
	}
	if res.Err != nil {
		doc.Error = res.Err.Error()
	}
	_, err := e.client.Index().Index(e.index).Type("_doc").BodyJson(doc).Do(ctx)
	if err != nil {
		e.log.Errorf("projection(elastic): err indexing %s: %s", res.Pattern, err)
	}
}

func stdLog(prefix string) *log.Logger {
	return log.New(os.Stderr, prefix, 0)
}
