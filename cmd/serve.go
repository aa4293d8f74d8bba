package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/pcollins/harmonia/chord"
	"github.com/pcollins/harmonia/constants"
	"github.com/pcollins/harmonia/model"
	"github.com/pcollins/harmonia/pitch"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve chord recognition over HTTP",
	Long:  `Serve chord recognition over HTTP. Listens on :8080 unless SERVE_ADDR says otherwise.`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func chordResult(c chord.Chord) model.ChordResult {
	q := c.Quality()
	pitches := c.Pitches()
	names := make([]string, len(pitches))
	for i, p := range pitches {
		names[i] = p.String()
	}
	return model.ChordResult{
		Name:      c.Name(),
		FullName:  c.FullName(),
		Abbr:      c.Abbr(),
		Quality:   q.Name(),
		Inversion: q.Inversion(),
		Pitches:   names,
	}
}

func qualityOverview(q *chord.Quality) model.QualityOverview {
	ivs := q.Intervals()
	names := make([]string, len(ivs))
	for i, iv := range ivs {
		names[i] = iv.String()
	}
	return model.QualityOverview{
		Name:      q.Name(),
		FullName:  q.FullName(),
		Abbrs:     q.Abbrs(),
		Intervals: names,
		Semitones: q.Semitones(),
	}
}

// requestPitches turns an identify request into an ordered pitch
// sequence: note names if given, MIDI keys otherwise.
func requestPitches(input model.IdentifyRequestBody) ([]pitch.PitchLike, error) {
	if len(input.Notes) > 0 {
		ps := make([]pitch.PitchLike, len(input.Notes))
		for i, n := range input.Notes {
			p, err := pitch.Parse(n)
			if err != nil {
				return nil, err
			}
			ps[i] = p
		}
		return ps, nil
	}
	ps := make([]pitch.PitchLike, len(input.Keys))
	for i, k := range input.Keys {
		ps[i] = pitch.FromMIDI(k)
	}
	return ps, nil
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	if errors.Is(err, chord.ErrNotFound) {
		status = http.StatusNotFound
	}
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
}

func handleIdentify(w http.ResponseWriter, r *http.Request) {
	var input model.IdentifyRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, fmt.Errorf("could not decode request body: %w", err))
		return
	}

	ps, err := requestPitches(input)
	if err != nil {
		writeError(w, err)
		return
	}
	c, err := chord.FromPitches(ps)
	if err != nil {
		writeError(w, err)
		return
	}
	json.NewEncoder(w).Encode(chordResult(c))
}

func handleQualities(w http.ResponseWriter, r *http.Request) {
	qs := chord.Qualities()
	res := make([]model.QualityOverview, len(qs))
	for i, q := range qs {
		res[i] = qualityOverview(q)
	}
	json.NewEncoder(w).Encode(res)
}

func handleQuality(w http.ResponseWriter, r *http.Request) {
	q, err := chord.QualityFromString(mux.Vars(r)["name"])
	if err != nil {
		writeError(w, err)
		return
	}
	json.NewEncoder(w).Encode(qualityOverview(q))
}

// requestID tags every response and log line so requests can be told
// apart in the logs.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-Id", id)
		log.Printf("%v %v %v", id, r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func newRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/identify", handleIdentify).Methods("POST")
	router.HandleFunc("/qualities", handleQualities).Methods("GET")
	router.HandleFunc("/qualities/{name}", handleQuality).Methods("GET")
	router.Use(requestID)
	return cors.Default().Handler(router)
}

func serve() {
	addr := constants.GetServeAddr()
	log.Printf("listening on %v", addr)
	log.Fatal(http.ListenAndServe(addr, newRouter()))
}
