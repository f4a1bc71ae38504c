package parallax

import "testing"

func TestLookupSite(t *testing.T) {
	s, ok := LookupSite("ctio")
	if !ok {
		t.Fatal("ctio should be a built-in site")
	}
	if s.Lat > -29 || s.Lat < -31 {
		t.Errorf("ctio latitude = %v, want ~-30.17", s.Lat)
	}
	if s.Name == "" {
		t.Error("built-in site has no name")
	}

	if _, ok := LookupSite("atlantis"); ok {
		t.Error("unknown site id should not resolve")
	}
}

func TestSiteIDs(t *testing.T) {
	ids := SiteIDs()
	if len(ids) == 0 {
		t.Fatal("no built-in sites")
	}

	seen := false
	for i, id := range ids {
		if i > 0 && ids[i-1] >= id {
			t.Errorf("ids not sorted: %q before %q", ids[i-1], id)
		}
		if id == "ctio" {
			seen = true
		}
		if _, ok := LookupSite(id); !ok {
			t.Errorf("listed id %q does not resolve", id)
		}
	}
	if !seen {
		t.Error("ctio missing from SiteIDs")
	}
}
