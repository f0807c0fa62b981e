package hexgrid

import "testing"

func TestUnitVectors(t *testing.T) {
	if UnitQ != (AxialPos{1, 0}) || UnitR != (AxialPos{0, -1}) || UnitS != (AxialPos{1, -1}) {
		t.Errorf("unit vectors = %v %v %v", UnitQ, UnitR, UnitS)
	}
	// Each unit vector lies one step from the origin.
	for _, u := range []AxialPos{UnitQ, UnitR, UnitS} {
		if u.Magnitude() != 1 {
			t.Errorf("Magnitude(%v) = %d, want 1", u, u.Magnitude())
		}
	}
}

func TestNeighbors(t *testing.T) {
	center := AxialPos{3, -2}
	seen := map[AxialPos]bool{}
	for _, n := range center.Neighbors() {
		if d := center.DistanceFrom(n); d != 1 {
			t.Errorf("neighbor %v at distance %d", n, d)
		}
		seen[n] = true
	}
	if len(seen) != 6 {
		t.Errorf("%d distinct neighbors, want 6", len(seen))
	}
}

func TestRingZero(t *testing.T) {
	center := AxialPos{1, 1}
	got := Ring(center, 0)
	if len(got) != 1 || got[0] != center {
		t.Errorf("Ring(c, 0) = %v, want [c]", got)
	}
}

func TestRing(t *testing.T) {
	center := AxialPos{-2, 4}
	for radius := 1; radius <= 5; radius++ {
		ring := Ring(center, radius)
		if len(ring) != 6*radius {
			t.Fatalf("len(Ring(c, %d)) = %d, want %d", radius, len(ring), 6*radius)
		}
		seen := map[AxialPos]bool{}
		for _, a := range ring {
			if d := center.DistanceFrom(a); d != radius {
				t.Fatalf("ring cell %v at distance %d, want %d", a, d, radius)
			}
			seen[a] = true
		}
		if len(seen) != len(ring) {
			t.Fatalf("ring at radius %d has duplicates", radius)
		}
	}
}

func TestDisk(t *testing.T) {
	center := AxialPos{2, -1}
	for radius := 0; radius <= 4; radius++ {
		disk := Disk(center, radius)
		want := 1 + 3*radius*(radius+1)
		if len(disk) != want {
			t.Fatalf("len(Disk(c, %d)) = %d, want %d", radius, len(disk), want)
		}
		seen := map[AxialPos]bool{}
		for _, a := range disk {
			if d := center.DistanceFrom(a); d > radius {
				t.Fatalf("disk cell %v at distance %d > %d", a, d, radius)
			}
			seen[a] = true
		}
		if len(seen) != len(disk) {
			t.Fatalf("disk at radius %d has duplicates", radius)
		}
	}
}

func TestDiskContainsRings(t *testing.T) {
	center := AxialPos{}
	disk := map[AxialPos]bool{}
	for _, a := range Disk(center, 3) {
		disk[a] = true
	}
	for radius := 0; radius <= 3; radius++ {
		for _, a := range Ring(center, radius) {
			if !disk[a] {
				t.Fatalf("ring cell %v (radius %d) missing from disk", a, radius)
			}
		}
	}
}
