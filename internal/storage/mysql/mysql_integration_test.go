//go:build integration

package mysql_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"

	mysqlsrc "trip_planner/internal/storage/mysql"
)

const schema = `
CREATE TABLE flights (
  id VARCHAR(32) PRIMARY KEY,
  origin VARCHAR(128) NOT NULL,
  destination VARCHAR(128) NOT NULL,
  airline VARCHAR(128),
  departure_time VARCHAR(16),
  arrival_time VARCHAR(16),
  price DOUBLE
);
CREATE TABLE hotels (
  id VARCHAR(32) PRIMARY KEY,
  city VARCHAR(128) NOT NULL,
  name VARCHAR(256) NOT NULL,
  stars DOUBLE,
  price_per_night DOUBLE,
  amenities JSON
);
CREATE TABLE places (
  id VARCHAR(32) PRIMARY KEY,
  city VARCHAR(128) NOT NULL,
  name VARCHAR(256) NOT NULL,
  type VARCHAR(128),
  entry_fee DOUBLE,
  rating DOUBLE
);`

func startMySQL(t *testing.T) *sql.DB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("docker not available: %v", err)
	}
	res, err := pool.Run("mysql", "8.0", []string{
		"MYSQL_ROOT_PASSWORD=secret",
		"MYSQL_DATABASE=catalog",
	})
	if err != nil {
		t.Fatalf("start mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(res) })

	dsn := fmt.Sprintf("root:secret@tcp(localhost:%s)/catalog?parseTime=true&multiStatements=true",
		res.GetPort("3306/tcp"))
	var db *sql.DB
	pool.MaxWait = 2 * time.Minute
	if err := pool.Retry(func() error {
		var err error
		db, err = sql.Open("mysql", dsn)
		if err != nil {
			return err
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return db
}

func TestSource_LoadsCatalogsFromDB(t *testing.T) {
	db := startMySQL(t)
	ctx := context.Background()

	mustExec := func(q string, args ...any) {
		t.Helper()
		if _, err := db.Exec(q, args...); err != nil {
			t.Fatalf("exec: %v", err)
		}
	}
	mustExec(`INSERT INTO flights VALUES ('F1','Mumbai','Goa','IndiGo','06:00','07:15',4500)`)
	mustExec(`INSERT INTO flights (id, origin, destination) VALUES ('F2','Mumbai','Goa')`)
	mustExec(`INSERT INTO hotels VALUES ('H1','Goa','Beach Stay',4,2500,'["wifi","pool"]')`)
	mustExec(`INSERT INTO hotels (id, city, name) VALUES ('H2','Goa','Mystery Inn')`)
	mustExec(`INSERT INTO places VALUES ('P1','Goa','Baga Beach','Beach',NULL,4.3)`)

	src := mysqlsrc.New(db)

	flights, err := src.LoadFlights(ctx)
	if err != nil {
		t.Fatalf("flights: %v", err)
	}
	if len(flights) != 2 || flights[0].ID != "F1" {
		t.Fatalf("unexpected flights: %+v", flights)
	}
	if flights[0].Price == nil || *flights[0].Price != 4500 {
		t.Fatalf("price lost: %+v", flights[0])
	}
	if flights[1].Price != nil {
		t.Fatalf("NULL price must map to unknown: %+v", flights[1])
	}

	hotels, err := src.LoadHotels(ctx)
	if err != nil {
		t.Fatalf("hotels: %v", err)
	}
	if len(hotels) != 2 {
		t.Fatalf("unexpected hotels: %+v", hotels)
	}
	if len(hotels[0].Amenities) != 2 {
		t.Fatalf("amenities lost: %+v", hotels[0])
	}
	if hotels[1].Stars != nil || hotels[1].PricePerNight != nil {
		t.Fatalf("NULL optionals must stay nil: %+v", hotels[1])
	}

	places, err := src.LoadPlaces(ctx)
	if err != nil {
		t.Fatalf("places: %v", err)
	}
	if len(places) != 1 || places[0].EntryFee != nil || places[0].Rating == nil {
		t.Fatalf("unexpected places: %+v", places)
	}
}

func TestSource_MissingTableIsCatalogUnavailable(t *testing.T) {
	db := startMySQL(t)
	if _, err := db.Exec(`DROP TABLE flights`); err != nil {
		t.Fatalf("drop: %v", err)
	}
	if _, err := mysqlsrc.New(db).LoadFlights(context.Background()); err == nil {
		t.Fatalf("expected load failure for missing table")
	}
}
