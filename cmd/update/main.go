package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"K-Movie-Archive/internal"
	"K-Movie-Archive/internal/archive"
	"K-Movie-Archive/internal/kofic"

	"github.com/joho/godotenv"
)

var kst = time.FixedZone("KST", 9*60*60)

func main() {
	// Load environment variables from a .env file when present.
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	target := flag.String("d", "", "target date (YYYYMMDD), defaults to yesterday KST")
	outDir := flag.String("o", "docs/data", "output data directory")
	help := flag.Bool("h", false, "show help")
	flag.Parse()
	if *help {
		flag.Usage()
		return
	}

	dt := *target
	if dt == "" {
		dt = os.Getenv("TARGET_DT")
	}
	if !validTargetDt(dt) {
		// The daily ranking for today is not final, yesterday's is.
		dt = time.Now().In(kst).AddDate(0, 0, -1).Format("20060102")
	}

	client, err := kofic.NewFromEnv()
	if err != nil {
		log.Fatalf("kofic client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	raw, err := client.DailyBoxOffice(ctx, dt)
	if err != nil {
		log.Fatalf("fetch daily box office for %s: %v", dt, err)
	}

	// The fetch ledger is optional; without DB_URL only the files are written.
	var db *sql.DB
	if os.Getenv("DB_URL") != "" {
		internal.InitDB()
		db = internal.DB
	}

	store := archive.NewStore(*outDir, db)
	ptr, err := store.SaveDaily(ctx, dt, raw)
	if err != nil {
		log.Fatalf("save snapshot: %v", err)
	}

	log.Printf("saved %s", filepath.Join(*outDir, ptr.File))
	log.Printf("updated %s", filepath.Join(*outDir, "latest.json"))
}

func validTargetDt(s string) bool {
	if len(s) != 8 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
