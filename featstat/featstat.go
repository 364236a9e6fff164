//Package featstat gathers simple per-feature statistics over descriptor
//buffers: means and standard deviations for standardizing the values before
//feeding them to a regressor, and histograms for judging how informative
//each feature is over a training set.
package featstat

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	acsf "github.com/rmera/goacsf"
)

//Stats holds per-feature means and standard deviations taken over the
//atom rows of one or more descriptor buffers, and uses them to bring
//features to zero mean and unit variance, which most regressors prefer
//over raw symmetry-function values.
type Stats struct {
	width    int
	n        int
	mean     []float64
	std      []float64
	divisors []float64 //std with the zeros replaced, so we can divide by it
}

//NewStats computes per-column statistics over the real atom rows of the
//given buffers, ignoring padding rows. All buffers must have the same
//width, but they may come from engines with different atom capacities.
func NewStats(bufs ...*acsf.Buffer) (*Stats, error) {
	if len(bufs) == 0 || bufs[0] == nil {
		return nil, fmt.Errorf("goacsf/featstat.NewStats: No buffers given")
	}
	S := new(Stats)
	S.width = bufs[0].Width()
	total := 0
	for _, v := range bufs {
		if v == nil || v.Width() != S.width {
			return nil, fmt.Errorf("goacsf/featstat.NewStats: Buffers don't have matching widths")
		}
		total += v.NAtoms()
	}
	if total == 0 {
		return nil, fmt.Errorf("goacsf/featstat.NewStats: Buffers contain no atom rows")
	}
	S.n = total
	S.mean = make([]float64, S.width)
	S.std = make([]float64, S.width)
	scratch := make([]float64, 0, total)
	for c := 0; c < S.width; c++ {
		scratch = scratch[:0]
		for _, v := range bufs {
			for i := 0; i < v.NAtoms(); i++ {
				scratch = append(scratch, v.At(i, c))
			}
		}
		m, std := stat.MeanStdDev(scratch, nil)
		if math.IsNaN(std) {
			std = 0 //a single sample has no spread to speak of
		}
		S.mean[c] = m
		S.std[c] = std
	}
	S.setDivisors()
	return S, nil
}

//constant columns get a unit divisor, so standardizing only centers them
func (S *Stats) setDivisors() {
	S.divisors = make([]float64, S.width)
	for i, v := range S.std {
		if v == 0 {
			S.divisors[i] = 1
		} else {
			S.divisors[i] = v
		}
	}
}

//N returns the number of atom rows used to compute the statistics.
func (S *Stats) N() int {
	return S.n
}

//Width returns the number of features per atom row.
func (S *Stats) Width() int {
	return S.width
}

//Mean returns a copy of the per-feature means. If a destination slice
//with enough capacity is given, it is used instead of allocating a new one.
func (S *Stats) Mean(dest ...[]float64) []float64 {
	d := getCopySlice(len(S.mean), dest...)
	copy(d, S.mean)
	return d
}

//StdDev returns a copy of the per-feature standard deviations. If a
//destination slice with enough capacity is given, it is used instead of
//allocating a new one.
func (S *Stats) StdDev(dest ...[]float64) []float64 {
	d := getCopySlice(len(S.std), dest...)
	copy(d, S.std)
	return d
}

//Standardize brings every real atom row of b to zero mean and unit
//variance, column by column, in place. Padding rows are left alone, so
//they stay zero. Features with no spread are only centered.
func (S *Stats) Standardize(b *acsf.Buffer) error {
	if b == nil || b.Width() != S.width {
		return fmt.Errorf("goacsf/featstat.Standardize: Buffer doesn't match the statistics")
	}
	for i := 0; i < b.NAtoms(); i++ {
		row := b.Row(i)
		floats.Sub(row, S.mean)
		floats.Div(row, S.divisors)
	}
	return nil
}

//UnStandardize undoes Standardize on the real atom rows of b.
func (S *Stats) UnStandardize(b *acsf.Buffer) error {
	if b == nil || b.Width() != S.width {
		return fmt.Errorf("goacsf/featstat.UnStandardize: Buffer doesn't match the statistics")
	}
	for i := 0; i < b.NAtoms(); i++ {
		row := b.Row(i)
		floats.Mul(row, S.divisors)
		floats.Add(row, S.mean)
	}
	return nil
}

func (S *Stats) String() string {
	return fmt.Sprintf("featstat.Stats{width:%d n:%d}", S.width, S.n)
}

func (S *Stats) MarshalJSON() ([]byte, error) {
	j, err := json.Marshal(struct {
		Width int       `json:"width"`
		N     int       `json:"n"`
		Mean  []float64 `json:"mean"`
		Std   []float64 `json:"std"`
	}{
		Width: S.width,
		N:     S.n,
		Mean:  S.mean,
		Std:   S.std,
	})
	if err != nil {
		return nil, err
	}
	return j, nil
}

func (S *Stats) UnmarshalJSON(b []byte) error {
	var a struct {
		Width int       `json:"width"`
		N     int       `json:"n"`
		Mean  []float64 `json:"mean"`
		Std   []float64 `json:"std"`
	}

	err := json.Unmarshal(b, &a)
	if err != nil {
		return err
	}
	S.width = a.Width
	S.n = a.N
	S.mean = a.Mean
	S.std = a.Std
	S.setDivisors()
	return nil
}

//FeatureHisto is a histogram per feature column, all columns sharing
//the same dividers. It helps choosing symmetry-function parameters: a
//feature whose values pile up in a single bin over a whole training set
//is not telling the regressor much.
type FeatureHisto struct {
	width      int
	normalized bool
	total      []int
	dividers   []float64
	histo      [][]float64
}

//NewFeatureHisto returns an empty histogram for width feature columns,
//with the bins delimited by the given dividers.
func NewFeatureHisto(width int, dividers []float64) (*FeatureHisto, error) {
	if width <= 0 {
		return nil, fmt.Errorf("goacsf/featstat.NewFeatureHisto: Nonsensical width %d", width)
	}
	if len(dividers) < 2 || !sort.Float64sAreSorted(dividers) {
		return nil, fmt.Errorf("goacsf/featstat.NewFeatureHisto: Need at least 2 sorted dividers")
	}
	H := new(FeatureHisto)
	H.width = width
	//I prefer to copy the slice to avoid somebody changing it from outside
	H.dividers = make([]float64, len(dividers))
	copy(H.dividers, dividers)
	H.total = make([]int, width)
	H.histo = make([][]float64, width)
	for i := range H.histo {
		H.histo[i] = make([]float64, len(dividers)-1)
	}
	return H, nil
}

//HistoFromBuffers builds the histograms in one shot from the real atom
//rows of the given buffers. Values outside the dividers are omitted.
func HistoFromBuffers(dividers []float64, bufs ...*acsf.Buffer) (*FeatureHisto, error) {
	if len(bufs) == 0 || bufs[0] == nil {
		return nil, fmt.Errorf("goacsf/featstat.HistoFromBuffers: No buffers given")
	}
	H, err := NewFeatureHisto(bufs[0].Width(), dividers)
	if err != nil {
		return nil, err
	}
	total := 0
	for _, v := range bufs {
		if v == nil || v.Width() != H.width {
			return nil, fmt.Errorf("goacsf/featstat.HistoFromBuffers: Buffers don't have matching widths")
		}
		total += v.NAtoms()
	}
	scratch := make([]float64, 0, total)
	for c := 0; c < H.width; c++ {
		scratch = scratch[:0]
		for _, v := range bufs {
			for i := 0; i < v.NAtoms(); i++ {
				scratch = append(scratch, v.At(i, c))
			}
		}
		H.reHisto(c, scratch)
	}
	return H, nil
}

//reHisto rebuilds the histogram of column c from rawdata, which it
//sorts and clips in place.
func (H *FeatureHisto) reHisto(c int, rawdata []float64) {
	sort.Float64s(rawdata)
	//stat.Histogram just panics instead of omitting the values that are off limits
	//so we remove them here before the call.
	maxi := sort.SearchFloat64s(rawdata, H.dividers[len(H.dividers)-1])
	mini := sort.SearchFloat64s(rawdata, H.dividers[0])
	if maxi < len(rawdata) {
		rawdata = rawdata[:maxi]
	}
	if mini != 0 {
		rawdata = rawdata[mini:]
	}
	H.total[c] = len(rawdata) //as this could have been modified
	for i := range H.histo[c] {
		H.histo[c][i] = 0
	}
	H.histo[c] = stat.Histogram(H.histo[c], H.dividers, rawdata, nil)
}

//AddData adds the real atom rows of b to the histograms. Values that
//fall outside the dividers are just omitted.
func (H *FeatureHisto) AddData(b *acsf.Buffer) error {
	if b == nil || b.Width() != H.width {
		return fmt.Errorf("goacsf/featstat.AddData: Buffer doesn't match the histograms")
	}
	var norma bool
	if H.normalized {
		norma = true
		H.UnNormalize()
	}
	for i := 0; i < b.NAtoms(); i++ {
		for c, v := range b.Row(i) {
			for j, w := range H.dividers {
				//Values that are larger than the last divider are just omitted.
				if j == len(H.dividers)-1 {
					break
				}
				if w <= v && v < H.dividers[j+1] {
					H.histo[c][j]++
					H.total[c]++
					break
				}
			}
		}
	}
	//if it was normalized, we should return it to that state
	if norma {
		H.Normalize()
	}
	return nil
}

//Add puts the bin-by-bin sum of the histograms a and b in the receiver,
//which must have the same dividers as both. It panics if the dividers
//don't match. Useful to combine histograms built concurrently.
func (H *FeatureHisto) Add(a, b *FeatureHisto) {
	if a.width != b.width || a.width != H.width {
		panic("goacsf/featstat.Add: Ill-formed histograms for addition")
	}
	if !floats.Equal(a.dividers, b.dividers) || !floats.Equal(a.dividers, H.dividers) {
		panic("goacsf/featstat.Add: Dividers must match in added histograms")
	}
	if a.normalized || b.normalized {
		panic("goacsf/featstat.Add: Can't add normalized histograms")
	}
	for c := range H.histo {
		H.total[c] = a.total[c] + b.total[c]
		for j := range H.histo[c] {
			H.histo[c][j] = a.histo[c][j] + b.histo[c][j]
		}
	}
	H.normalized = false
}

//Normalized returns true if the histograms are normalized
func (H *FeatureHisto) Normalized() bool {
	return H.normalized
}

//Normalize normalizes every histogram by its own total
func (H *FeatureHisto) Normalize() {
	H.normaunnorma(true)
}

//UnNormalize un-normalizes the histograms
func (H *FeatureHisto) UnNormalize() {
	H.normaunnorma(false)
}

//normalizes or un-normalizes the histograms depending
//on whether normalize is true
func (H *FeatureHisto) normaunnorma(normalize bool) {
	H.normalized = false
	for c, h := range H.histo {
		if H.total[c] <= 0 {
			continue
		}
		n := float64(H.total[c])
		if normalize {
			n = 1 / n
		}
		floats.Scale(n, h)
	}
	if normalize {
		H.normalized = true
	}
}

//Width returns the number of feature columns histogrammed.
func (H *FeatureHisto) Width() int {
	return H.width
}

//Bins returns the number of bins in each histogram.
func (H *FeatureHisto) Bins() int {
	return len(H.dividers) - 1
}

//Total returns the number of data points binned for feature column c.
func (H *FeatureHisto) Total(c int) int {
	H.check(c, true)
	return H.total[c]
}

//View returns a view of the histogram of feature column c.
func (H *FeatureHisto) View(c int) []float64 {
	H.check(c, true)
	return H.histo[c]
}

//Column returns a copy of the histogram of feature column c. If a
//destination slice with enough capacity is given, it is used instead
//of allocating a new one.
func (H *FeatureHisto) Column(c int, dest ...[]float64) []float64 {
	H.check(c, true)
	d := getCopySlice(len(H.histo[c]), dest...)
	copy(d, H.histo[c])
	return d
}

//CopyDividers returns a copy of the dividers of the histograms.
func (H *FeatureHisto) CopyDividers(dest ...[]float64) []float64 {
	d := getCopySlice(len(H.dividers), dest...)
	copy(d, H.dividers)
	return d
}

//check checks if the given column index is within range.
//if pan is given and true, it panics if it is out of range,
//otherwise, it returns an error.
func (H *FeatureHisto) check(c int, pan ...bool) error {
	p := false
	var err error
	if len(pan) > 0 && pan[0] {
		p = true
	}
	if c < 0 || c >= H.width {
		err = fmt.Errorf("goacsf/featstat: Column out of range")
	}
	if err != nil && p {
		panic(err.Error())
	}
	return err
}

//String prints a -hopefully- pretty string representation of the
//histograms, with the bins on the first line and one line per column.
func (H *FeatureHisto) String() string {
	ret := fmt.Sprintf("width:%d bins:%d normalized:%v\n", H.width, H.Bins(), H.normalized)
	d := make([]string, 0, H.Bins())
	for i := 0; i < H.Bins(); i++ {
		d = append(d, fmt.Sprintf("%4.2f-%4.2f", H.dividers[i], H.dividers[i+1]))
	}
	lines := make([]string, 0, H.width+1)
	lines = append(lines, "         "+strings.Join(d, " "))
	for c, h := range H.histo {
		v := make([]string, 0, len(h)+1)
		v = append(v, fmt.Sprintf("col %4d:", c))
		for _, w := range h {
			v = append(v, fmt.Sprintf("%9.3f", w))
		}
		lines = append(lines, strings.Join(v, " "))
	}
	return ret + strings.Join(lines, "\n")
}

func (H *FeatureHisto) MarshalJSON() ([]byte, error) {
	j, err := json.Marshal(struct {
		Width      int         `json:"width"`
		Normalized bool        `json:"normalized"`
		Total      []int       `json:"total"`
		Dividers   []float64   `json:"dividers"`
		Histo      [][]float64 `json:"histo"`
	}{
		Width:      H.width,
		Normalized: H.normalized,
		Total:      H.total,
		Dividers:   H.dividers,
		Histo:      H.histo,
	})
	if err != nil {
		return nil, err
	}
	return j, nil
}

func (H *FeatureHisto) UnmarshalJSON(b []byte) error {
	var a struct {
		Width      int         `json:"width"`
		Normalized bool        `json:"normalized"`
		Total      []int       `json:"total"`
		Dividers   []float64   `json:"dividers"`
		Histo      [][]float64 `json:"histo"`
	}

	err := json.Unmarshal(b, &a)
	if err != nil {
		return err
	}
	H.width = a.Width
	H.normalized = a.Normalized
	H.total = a.Total
	H.dividers = a.Dividers
	H.histo = a.Histo
	return nil
}

func getCopySlice(N int, dest ...[]float64) []float64 {
	var d []float64
	if len(dest) > 0 && len(dest[0]) >= N {
		d = dest[0][:N]
	} else {
		d = make([]float64, N)
	}
	return d

}
