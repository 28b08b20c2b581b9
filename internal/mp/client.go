package mp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ahmedawad/matselect/internal/formula"
	"github.com/ahmedawad/matselect/internal/types"
)

const (
	// DefaultBaseURL is the production Materials Project API endpoint.
	DefaultBaseURL = "https://api.materialsproject.org"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultLimit bounds search results when the caller does not.
	DefaultLimit = 100

	// defaultMaxEnergyAboveHull is the stability ceiling applied to searches
	// that specify no hull-energy bound. Only stable or near-stable phases
	// are worth recommending.
	defaultMaxEnergyAboveHull = 0.1

	// Band-gap bounds used when the caller constrains only one side.
	defaultMinBandGap = 0.0
	defaultMaxBandGap = 15.0

	summaryPath = "/materials/summary/"

	// statusProbeID is a material guaranteed to exist (silicon); used by
	// CheckStatus as a minimal authenticated query.
	statusProbeID = "mp-149"
)

var searchFields = []string{
	"material_id", "formula_pretty", "composition",
	"energy_above_hull", "band_gap", "density",
	"formation_energy_per_atom", "symmetry",
	"theoretical", "is_stable",
}

var detailFields = append(searchFields[:len(searchFields):len(searchFields)],
	"volume", "bulk_modulus", "shear_modulus", "universal_anisotropy")

// Options configures the client transport.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// DefaultOptions returns sensible defaults for talking to the production API.
func DefaultOptions() *Options {
	return &Options{
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// Client is an HTTP client for the Materials Project summary API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Materials Project client. If apiKey is empty, the
// MP_API_KEY environment variable is consulted; a missing key is a fatal
// configuration error.
func NewClient(apiKey string, opts *Options) (*Client, error) {
	if apiKey == "" {
		apiKey = os.Getenv("MP_API_KEY")
	}
	if apiKey == "" {
		return nil, &ConfigError{
			Message: "API key required: pass one explicitly or set MP_API_KEY " +
				"(get a key at https://materialsproject.org/dashboard)",
		}
	}

	if opts == nil {
		opts = DefaultOptions()
	}
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}, nil
}

// Search queries the summary endpoint by property constraints. A default
// stability ceiling is applied when the criteria specify no hull-energy
// bound, so unconstrained searches never return deeply metastable phases.
func (c *Client) Search(ctx context.Context, criteria Criteria) ([]types.MaterialRecord, error) {
	limit := criteria.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	params := url.Values{}
	params.Set("_fields", strings.Join(searchFields, ","))
	params.Set("_limit", strconv.Itoa(limit))

	minHull := 0.0
	if criteria.MinEnergyAboveHull != nil {
		minHull = *criteria.MinEnergyAboveHull
	}
	maxHull := defaultMaxEnergyAboveHull
	if criteria.MaxEnergyAboveHull != nil {
		maxHull = *criteria.MaxEnergyAboveHull
	}
	params.Set("energy_above_hull_min", formatFloat(minHull))
	params.Set("energy_above_hull_max", formatFloat(maxHull))

	if criteria.MinBandGap != nil || criteria.MaxBandGap != nil {
		minGap := defaultMinBandGap
		if criteria.MinBandGap != nil {
			minGap = *criteria.MinBandGap
		}
		maxGap := defaultMaxBandGap
		if criteria.MaxBandGap != nil {
			maxGap = *criteria.MaxBandGap
		}
		params.Set("band_gap_min", formatFloat(minGap))
		params.Set("band_gap_max", formatFloat(maxGap))
	}

	if len(criteria.Elements) > 0 {
		params.Set("elements", strings.Join(criteria.Elements, ","))
	}
	if len(criteria.CrystalSystems) > 0 {
		params.Set("crystal_system", strings.Join(criteria.CrystalSystems, ","))
	}

	docs, err := c.query(ctx, "search", params)
	if err != nil {
		return nil, err
	}

	records := make([]types.MaterialRecord, 0, len(docs))
	for _, doc := range docs {
		records = append(records, doc.toRecord())
	}
	return records, nil
}

// GetByID returns the detailed record for one material identifier.
func (c *Client) GetByID(ctx context.Context, materialID string) (*types.MaterialRecord, error) {
	params := url.Values{}
	params.Set("material_ids", materialID)
	params.Set("_fields", strings.Join(detailFields, ","))

	docs, err := c.query(ctx, "get_by_id", params)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, &NotFoundError{MaterialID: materialID}
	}

	record := docs[0].toRecord()
	return &record, nil
}

// SearchByFormula returns all materials matching a chemical formula
// (e.g. "Fe2O3", "SiO2").
func (c *Client) SearchByFormula(ctx context.Context, chemFormula string) ([]types.MaterialRecord, error) {
	params := url.Values{}
	params.Set("formula", chemFormula)
	params.Set("_fields", strings.Join(searchFields, ","))

	docs, err := c.query(ctx, "search_by_formula", params)
	if err != nil {
		return nil, err
	}

	records := make([]types.MaterialRecord, 0, len(docs))
	for _, doc := range docs {
		records = append(records, doc.toRecord())
	}
	return records, nil
}

// SimilarByComposition finds materials sharing the element set of a
// reference material. Structure-based similarity would need crystal-structure
// comparison and is not offered.
func (c *Client) SimilarByComposition(ctx context.Context, materialID string, limit int) ([]types.MaterialRecord, error) {
	reference, err := c.GetByID(ctx, materialID)
	if err != nil {
		return nil, err
	}

	elements := formula.Elements(reference.Composition)
	if len(elements) == 0 {
		elements = formula.Elements(reference.Formula)
	}

	return c.Search(ctx, Criteria{Elements: elements, Limit: limit})
}

// PropertyRange reports the expected value range for a property across the
// database. These are fixed reference ranges; a full scan is impractical.
func PropertyRange(property string) (min, max float64, ok bool) {
	switch property {
	case "band_gap":
		return 0, 15, true
	case "density":
		return 0.5, 25, true
	case "formation_energy":
		return -10, 2, true
	default:
		return 0, 0, false
	}
}

// CheckStatus verifies the API is reachable and the key is accepted by
// fetching a single well-known material.
func (c *Client) CheckStatus(ctx context.Context) (bool, error) {
	params := url.Values{}
	params.Set("material_ids", statusProbeID)
	params.Set("_fields", "material_id")

	docs, err := c.query(ctx, "status_check", params)
	if err != nil {
		return false, err
	}
	return len(docs) > 0, nil
}

// query executes one GET against the summary endpoint and decodes the
// response envelope.
func (c *Client) query(ctx context.Context, operation string, params url.Values) ([]summaryDoc, error) {
	reqURL := c.baseURL + summaryPath + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &APIError{Operation: operation, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &APIError{Operation: operation, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Operation: operation, Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	var envelope struct {
		Data []summaryDoc `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &APIError{Operation: operation, Message: "failed to decode response", Cause: err}
	}

	return envelope.Data, nil
}

// summaryDoc mirrors one document of the summary API response.
type summaryDoc struct {
	MaterialID             string             `json:"material_id"`
	FormulaPretty          string             `json:"formula_pretty"`
	Composition            map[string]float64 `json:"composition"`
	EnergyAboveHull        *float64           `json:"energy_above_hull"`
	BandGap                *float64           `json:"band_gap"`
	Density                *float64           `json:"density"`
	FormationEnergyPerAtom *float64           `json:"formation_energy_per_atom"`
	Symmetry               *struct {
		CrystalSystem string `json:"crystal_system"`
		Symbol        string `json:"symbol"`
	} `json:"symmetry"`
	IsStable            bool        `json:"is_stable"`
	Theoretical         bool        `json:"theoretical"`
	Volume              *float64    `json:"volume"`
	BulkModulus         *modulusDoc `json:"bulk_modulus"`
	ShearModulus        *modulusDoc `json:"shear_modulus"`
	UniversalAnisotropy *float64    `json:"universal_anisotropy"`
}

// modulusDoc holds the Voigt-Reuss-Hill averages reported for elastic moduli.
type modulusDoc struct {
	VRH float64 `json:"vrh"`
}

func (d summaryDoc) toRecord() types.MaterialRecord {
	record := types.MaterialRecord{
		ID:              d.MaterialID,
		Formula:         d.FormulaPretty,
		Composition:     formatComposition(d.Composition),
		BandGap:         d.BandGap,
		Density:         d.Density,
		FormationEnergy: d.FormationEnergyPerAtom,
		IsStable:        d.IsStable,
		IsTheoretical:   d.Theoretical,
		Volume:          d.Volume,
	}
	if d.EnergyAboveHull != nil {
		record.EnergyAboveHull = *d.EnergyAboveHull
	}
	if d.Symmetry != nil {
		record.CrystalSystem = d.Symmetry.CrystalSystem
		record.SpaceGroup = d.Symmetry.Symbol
	}
	if d.BulkModulus != nil {
		record.BulkModulus = types.Float64Ptr(d.BulkModulus.VRH)
	}
	if d.ShearModulus != nil {
		record.ShearModulus = types.Float64Ptr(d.ShearModulus.VRH)
	}
	record.YoungsModulus = d.UniversalAnisotropy
	record.Normalize()
	return record
}

// formatComposition serializes an element→count map as "Fe2 O3" with
// elements in alphabetical order.
func formatComposition(composition map[string]float64) string {
	if len(composition) == 0 {
		return ""
	}

	elements := make([]string, 0, len(composition))
	for element := range composition {
		elements = append(elements, element)
	}
	sort.Strings(elements)

	parts := make([]string, 0, len(elements))
	for _, element := range elements {
		count := composition[element]
		if count == 1 {
			parts = append(parts, element)
		} else {
			parts = append(parts, fmt.Sprintf("%s%s", element, formatFloat(count)))
		}
	}
	return strings.Join(parts, " ")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
