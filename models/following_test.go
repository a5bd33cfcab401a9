package models

import (
	"reflect"
	"testing"
)

func TestUserFollow(t *testing.T) {
	u := User{Username: "alice"}

	if !u.Follow(FollowEdge{UserID: "b", Username: "bob"}) {
		t.Fatal("Expected first follow to change the list")
	}
	if u.Follow(FollowEdge{UserID: "b", Username: "bob"}) {
		t.Error("Expected identical follow to be a no-op")
	}

	u.Follow(FollowEdge{UserID: "c", Username: "carol"})

	// Renamed user: edge is updated in place, not duplicated
	if !u.Follow(FollowEdge{UserID: "b", Username: "bobby"}) {
		t.Error("Expected rename to change the list")
	}

	expected := []FollowEdge{
		{UserID: "b", Username: "bobby"},
		{UserID: "c", Username: "carol"},
	}
	if !reflect.DeepEqual(u.Following, expected) {
		t.Errorf("Expected %v, got %v", expected, u.Following)
	}
}

func TestUserUnfollow(t *testing.T) {
	u := User{Following: []FollowEdge{
		{UserID: "b", Username: "bob"},
		{UserID: "c", Username: "carol"},
		{UserID: "b", Username: "old-bob"}, // legacy duplicate
	}}

	if u.Unfollow("zzz") {
		t.Error("Expected unfollow of unknown user to report false")
	}
	if !u.Unfollow("b") {
		t.Fatal("Expected unfollow to report true")
	}
	if len(u.Following) != 1 || u.Following[0].UserID != "c" {
		t.Errorf("Expected only c to remain, got %v", u.Following)
	}
}
