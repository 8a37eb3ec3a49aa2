package lists

import (
	"path/filepath"
	"testing"
)

func TestAggregateIPLists(t *testing.T) {
	tmpDir := t.TempDir()
	ipDir := filepath.Join(tmpDir, "ip")
	listPath := filepath.Join(ipDir, "subnets.lst")

	// 10.0.0.0/9 + 10.128.0.0/9 collapse into 10.0.0.0/8; the /32 inside
	// is absorbed; the unrelated /24 stays.
	writeFixture(t, listPath, "# subnets\n10.0.0.0/9\n10.128.0.0/9\n10.1.2.3\nnot-an-ip\n192.0.2.0/24\n")

	cfg := testConfig(t, filepath.Join(tmpDir, "domains"), ipDir)
	aggregator := NewAggregator(cfg, true, false)

	summary, err := aggregator.AggregateIPLists()
	if err != nil {
		t.Fatalf("AggregateIPLists failed: %v", err)
	}

	if summary.Files != 1 {
		t.Errorf("expected 1 file, got %d", summary.Files)
	}
	if summary.Networks != 4 {
		t.Errorf("expected 4 input networks, got %d", summary.Networks)
	}
	if summary.Merged != 2 {
		t.Errorf("expected 2 merged networks, got %d", summary.Merged)
	}
	if summary.Dropped != 1 {
		t.Errorf("expected 1 dropped line, got %d", summary.Dropped)
	}

	got := readFile(t, listPath)
	want := "# subnets\nIP-CIDR,10.0.0.0/8,no-resolve\nIP-CIDR,192.0.2.0/24,no-resolve\n"
	if got != want {
		t.Errorf("aggregated file = %q, want %q", got, want)
	}

	backup := readFile(t, listPath+".bak")
	if backup != "# subnets\n10.0.0.0/9\n10.128.0.0/9\n10.1.2.3\nnot-an-ip\n192.0.2.0/24" {
		t.Errorf("unexpected backup content: %q", backup)
	}
}

func TestAggregateIPLists_AlreadyMinimal(t *testing.T) {
	tmpDir := t.TempDir()
	ipDir := filepath.Join(tmpDir, "ip")
	listPath := filepath.Join(ipDir, "subnets.lst")

	writeFixture(t, listPath, "IP-CIDR,10.0.0.0/8,no-resolve\nIP-CIDR,192.0.2.0/24,no-resolve\n")

	cfg := testConfig(t, filepath.Join(tmpDir, "domains"), ipDir)
	aggregator := NewAggregator(cfg, false, false)

	summary, err := aggregator.AggregateIPLists()
	if err != nil {
		t.Fatalf("AggregateIPLists failed: %v", err)
	}
	if summary.Networks != 2 || summary.Merged != 2 {
		t.Errorf("unexpected summary: %+v", summary)
	}

	got := readFile(t, listPath)
	want := "IP-CIDR,10.0.0.0/8,no-resolve\nIP-CIDR,192.0.2.0/24,no-resolve\n"
	if got != want {
		t.Errorf("aggregated file = %q, want %q", got, want)
	}
}

func TestAggregateIPLists_MixedFamilies(t *testing.T) {
	tmpDir := t.TempDir()
	ipDir := filepath.Join(tmpDir, "ip")
	listPath := filepath.Join(ipDir, "subnets.lst")

	// The bare IPv6 host and the /48 are both absorbed by 2001:db8::/32;
	// the IPv4 network is merged on its own side and rendered first.
	writeFixture(t, listPath, "2001:db8::1\n2001:db8:ffff::/48\n10.0.0.0/8\n2001:db8::/32\n")

	cfg := testConfig(t, filepath.Join(tmpDir, "domains"), ipDir)
	aggregator := NewAggregator(cfg, false, false)

	summary, err := aggregator.AggregateIPLists()
	if err != nil {
		t.Fatalf("AggregateIPLists failed: %v", err)
	}

	if summary.Networks != 4 {
		t.Errorf("expected 4 input networks, got %d", summary.Networks)
	}
	if summary.Merged != 2 {
		t.Errorf("expected 2 merged networks, got %d", summary.Merged)
	}
	if summary.Dropped != 0 {
		t.Errorf("expected 0 dropped lines, got %d", summary.Dropped)
	}

	got := readFile(t, listPath)
	want := "IP-CIDR,10.0.0.0/8,no-resolve\nIP-CIDR,2001:db8::/32,no-resolve\n"
	if got != want {
		t.Errorf("aggregated file = %q, want %q", got, want)
	}
}

func TestAggregateIPLists_IPv6Only(t *testing.T) {
	tmpDir := t.TempDir()
	ipDir := filepath.Join(tmpDir, "ip")
	listPath := filepath.Join(ipDir, "subnets.lst")

	writeFixture(t, listPath, "IP-CIDR,2001:db8::42,no-resolve\nfd00::/8\n2001:db8::/32\n")

	cfg := testConfig(t, filepath.Join(tmpDir, "domains"), ipDir)
	aggregator := NewAggregator(cfg, false, false)

	summary, err := aggregator.AggregateIPLists()
	if err != nil {
		t.Fatalf("AggregateIPLists failed: %v", err)
	}
	if summary.Networks != 3 || summary.Merged != 2 {
		t.Errorf("unexpected summary: %+v", summary)
	}

	got := readFile(t, listPath)
	want := "IP-CIDR,2001:db8::/32,no-resolve\nIP-CIDR,fd00::/8,no-resolve\n"
	if got != want {
		t.Errorf("aggregated file = %q, want %q", got, want)
	}
}

func TestAggregateIPLists_DryRun(t *testing.T) {
	tmpDir := t.TempDir()
	ipDir := filepath.Join(tmpDir, "ip")
	listPath := filepath.Join(ipDir, "subnets.lst")
	original := "10.0.0.0/9\n10.128.0.0/9\n"

	writeFixture(t, listPath, original)

	cfg := testConfig(t, filepath.Join(tmpDir, "domains"), ipDir)
	aggregator := NewAggregator(cfg, true, true)

	summary, err := aggregator.AggregateIPLists()
	if err != nil {
		t.Fatalf("dry run failed: %v", err)
	}
	if summary.Merged != 1 {
		t.Errorf("expected 1 merged network, got %d", summary.Merged)
	}

	if got := readFile(t, listPath); got != original {
		t.Errorf("dry run modified the file: %q", got)
	}
}
