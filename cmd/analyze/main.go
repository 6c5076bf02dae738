// Command analyze prints a report over the archive's movie index.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
)

const maxMissingExamples = 5

func main() {
	dir := flag.String("dir", "docs/data", "data directory")
	flag.Parse()

	path := filepath.Join(*dir, "search", "movies.json")
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("read %s: %v", path, err)
	}
	if !gjson.ValidBytes(data) {
		log.Fatalf("%s is not valid JSON", path)
	}

	movies := gjson.GetBytes(data, "movies").Array()
	if len(movies) == 0 {
		fmt.Println("분석할 영화 데이터가 없습니다.")
		return
	}

	var dates []string
	var missing []string
	years := map[string]int{}
	for _, m := range movies {
		openDt := strings.TrimSpace(m.Get("openDt").String())
		if openDt == "" {
			missing = append(missing, m.Get("movieNm").String())
			continue
		}
		dates = append(dates, openDt)
		years[strings.SplitN(openDt, "-", 2)[0]]++
	}
	sort.Strings(dates)

	rule := strings.Repeat("=", 40)
	fmt.Println(rule)
	fmt.Println(" K-Movie Archive 데이터 분석 리포트")
	fmt.Println(rule)
	fmt.Printf("\n- 총 영화 수: %d편\n", len(movies))
	if len(dates) > 0 {
		fmt.Printf("- 개봉일 데이터 범위: %s ~ %s\n", dates[0], dates[len(dates)-1])
	}
	fmt.Printf("- 개봉일 정보가 없는 영화: %d편\n", len(missing))
	if len(missing) > 0 {
		if len(missing) > maxMissingExamples {
			missing = missing[:maxMissingExamples]
		}
		fmt.Printf("  (예시: '%s')\n", strings.Join(missing, "', '"))
	}

	fmt.Println("\n- 연도별 영화 개봉 수:")
	var ys []string
	for y := range years {
		ys = append(ys, y)
	}
	sort.Strings(ys)
	for _, y := range ys {
		fmt.Printf("  %s년: %d편\n", y, years[y])
	}
}
