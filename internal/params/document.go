package params

// Document is the content of the config.toml or config.json
// file found in the data directory.
type Document struct {
	// Delay is the period between two update cycles, in seconds.
	Delay       *uint64 `json:"delay" toml:"delay"`
	MultiThread *bool   `json:"multi_thread" toml:"multi_thread"`
	// MutliThread is the legacy misspelled key of MultiThread.
	MutliThread *bool          `json:"mutli_thread" toml:"mutli_thread"`
	LogLevel    *string        `json:"log_level" toml:"log_level"`
	IPv4URL     *string        `json:"ipv4_url" toml:"ipv4_url"`
	IPv6URL     *string        `json:"ipv6_url" toml:"ipv6_url"`
	Records     []recordFields `json:"dns_records" toml:"dns_records"`
}

type recordFields struct {
	APIToken string `json:"api_token" toml:"api_token"`
	ZoneID   string `json:"zone_id" toml:"zone_id"`
	DNSID    string `json:"dns_id" toml:"dns_id"`
	Type     string `json:"type" toml:"type"`
	Name     string `json:"name" toml:"name"`
	TTL      uint32 `json:"ttl" toml:"ttl"`
	Proxied  bool   `json:"proxied" toml:"proxied"`
}

// MultiThreaded returns the multi threading flag,
// preferring the correctly spelled key if both are set.
func (d Document) MultiThreaded() *bool {
	if d.MultiThread != nil {
		return d.MultiThread
	}
	return d.MutliThread
}
