package store

import (
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/go-xorm/xorm"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"xorm.io/xorm/names"

	"sortdemo/src/sort"
	"sortdemo/src/utils"
)

var logger = utils.GetLogger("store")

// Run is one recorded invocation of a sort strategy.
type Run struct {
	Id          int64         `xorm:"pk autoincr"`
	RunId       string        `xorm:"varchar(36) unique notnull"`
	Strategy    string        `xorm:"varchar(32) index notnull"`
	Input       sort.Sequence `xorm:"text notnull"`
	Output      sort.Sequence `xorm:"text notnull"`
	Comparisons int64         `xorm:"notnull"`
	Swaps       int64         `xorm:"notnull"`
	Sorted      bool          `xorm:"notnull"`
	Created     time.Time     `xorm:"created"`
}

type Store struct {
	engine *xorm.Engine
}

// ParseMetaURL splits "driver://dsn" into its driver name and data source.
func ParseMetaURL(metaURL string) (driver, dsn string, err error) {
	p := strings.Index(metaURL, "://")
	if p < 0 {
		return "", "", errors.Errorf("invalid meta url %q: want driver://dsn", metaURL)
	}
	driver, dsn = metaURL[:p], metaURL[p+3:]
	switch driver {
	case "mysql", "sqlite3":
	default:
		return "", "", errors.Errorf("unsupported meta driver %q", driver)
	}
	if dsn == "" {
		return "", "", errors.Errorf("invalid meta url %q: empty data source", metaURL)
	}
	return driver, dsn, nil
}

// Open connects to metaURL and creates the run table if needed.
func Open(metaURL string) (*Store, error) {
	driver, dsn, err := ParseMetaURL(metaURL)
	if err != nil {
		return nil, err
	}
	engine, err := xorm.NewEngine(driver, dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s engine", driver)
	}
	if err = engine.Ping(); err != nil {
		engine.Close()
		return nil, errors.Wrapf(err, "ping %s", driver)
	}

	engine.SetTableMapper(names.NewPrefixMapper(engine.GetTableMapper(), "sort_"))
	engine.ShowSQL(logger.IsLevelEnabled(logrus.TraceLevel))

	if err = engine.Sync2(new(Run)); err != nil {
		engine.Close()
		return nil, errors.Wrap(err, "sync run table")
	}
	logger.Debugf("run history opened on %s", driver)
	return &Store{engine: engine}, nil
}

// NewRun builds an unsaved Run with a fresh id.
func NewRun(strategy string, input, output sort.Sequence, c *sort.Counter) *Run {
	r := &Run{
		RunId:    uuid.New().String(),
		Strategy: strategy,
		Input:    sort.NewSequence(input...),
		Output:   sort.NewSequence(output...),
		Sorted:   sort.IsSorted(output),
	}
	if c != nil {
		r.Comparisons = c.Comparisons
		r.Swaps = c.Swaps
	}
	return r
}

func (s *Store) Save(r *Run) error {
	if r.RunId == "" {
		r.RunId = uuid.New().String()
	}
	if _, err := s.engine.Insert(r); err != nil {
		return errors.Wrapf(err, "save run %s", r.RunId)
	}
	return nil
}

func (s *Store) Get(runID string) (*Run, bool, error) {
	r := &Run{RunId: runID}
	ok, err := s.engine.Get(r)
	if err != nil {
		return nil, false, errors.Wrapf(err, "get run %s", runID)
	}
	if !ok {
		return nil, false, nil
	}
	return r, true, nil
}

// List returns runs newest first. An empty strategy matches all; limit <= 0 means no limit.
func (s *Store) List(strategy string, limit int) ([]Run, error) {
	sess := s.engine.Desc("id")
	defer sess.Close()
	if strategy != "" {
		sess = sess.Where("strategy = ?", strategy)
	}
	if limit > 0 {
		sess = sess.Limit(limit)
	}
	var runs []Run
	if err := sess.Find(&runs); err != nil {
		return nil, errors.Wrap(err, "list runs")
	}
	return runs, nil
}

func (s *Store) Close() error {
	return s.engine.Close()
}
