package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/logrusorgru/aurora"

	"dotsandboxes/pkg/models/game"
	"dotsandboxes/pkg/models/progress"
)

var (
	gamesConf   = flag.Int("games", 1000, "number of games to play")
	rowsConf    = flag.Int("rows", 4, "dot rows")
	colsConf    = flag.Int("cols", 6, "dot cols")
	playersConf = flag.Int("players", 2, "player count")
	seedConf    = flag.Int64("seed", 0, "random seed, 0 picks the clock")
)

// playOnce drives one session with uniformly random legal moves and
// returns its result. Moves flow through the same Apply path the
// adapters use, so a full run exercises every rule of the engine.
func playOnce(r *rand.Rand, rows, cols, players int) game.Result {
	s, err := game.NewSession(rows, cols, players)
	if err != nil {
		log.Fatalln(err)
	}

	for !s.Over() {
		free := s.FreeEdges()
		if _, err := s.Apply(free[r.Intn(len(free))]); err != nil {
			log.Fatalf("rejected a free edge: %v", err)
		}
	}

	checkFinal(s)

	result, ok := s.Result()
	if !ok {
		log.Fatalln("finished game reported no result")
	}
	return result
}

// checkFinal cross-checks the finished session: every box owned, the
// score total matching the box count, no free edges left.
func checkFinal(s *game.Session) {
	if len(s.FreeEdges()) != 0 {
		log.Fatalf("game over with %d free edges", len(s.FreeEdges()))
	}
	if s.DrawnCount() != s.Grid.EdgeCount() {
		log.Fatalf("drawn %d of %d edges at game over", s.DrawnCount(), s.Grid.EdgeCount())
	}

	total := 0
	for _, sc := range s.Scores() {
		total += sc
	}
	if total != s.Grid.BoxCount() {
		log.Fatalf("scores sum to %d, grid has %d boxes", total, s.Grid.BoxCount())
	}
	for _, b := range s.Grid.Boxes() {
		if _, ok := s.Owner(b); !ok {
			log.Fatalf("box %v unowned at game over", b)
		}
	}
}

func main() {
	flag.Parse()

	seed := *seedConf
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))

	wins := make([]int, *playersConf)
	ties := 0

	bar := progress.NewBar(*gamesConf, fmt.Sprintf("Playing %dx%d games...", *rowsConf, *colsConf))
	for range *gamesConf {
		result := playOnce(r, *rowsConf, *colsConf, *playersConf)
		if result.Tie() {
			ties++
		} else {
			wins[result.Winners[0]]++
		}
		bar.Add(1)
	}
	bar.Close()

	fmt.Println()
	fmt.Printf("%s seed=%d games=%d grid=%dx%d players=%d\n",
		aurora.Bold("Done."), seed, *gamesConf, *rowsConf, *colsConf, *playersConf)
	for p, w := range wins {
		fmt.Printf("  %s %d\n", aurora.Green(fmt.Sprintf("Player%d wins:", p+1)), w)
	}
	fmt.Printf("  %s %d\n", aurora.Yellow("Ties:"), ties)
}
