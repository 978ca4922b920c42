package enrich

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/leighmacdonald/steamid/v2/steamid"

	"github.com/louisbranch/steamwatch/internal/services/notifications/domain"
)

const testActor = steamid.SID64(76561197960287930)

type fakeProfiles struct {
	summary domain.ActorSummary
	err     error
	calls   atomic.Int32
}

func (f *fakeProfiles) ActorSummary(_ context.Context, id steamid.SID64) (domain.ActorSummary, error) {
	f.calls.Add(1)
	if f.err != nil {
		return domain.ActorSummary{}, f.err
	}
	summary := f.summary
	summary.ProfileID = id
	return summary, nil
}

type fakeEvents struct {
	id  string
	err error
}

func (f fakeEvents) StructuredEventID(context.Context, string) (string, error) {
	return f.id, f.err
}

type fakeProducts struct {
	details    domain.StoreDetails
	detailsErr error
	players    int
	playersErr error
	started    *sync.WaitGroup
}

func (f fakeProducts) ProductDetails(_ context.Context, _ int, cc string) (domain.StoreDetails, error) {
	f.arrive()
	details := f.details
	details.Name = details.Name + "/" + cc
	return details, f.detailsErr
}

func (f fakeProducts) LivePlayerCount(context.Context, int) (int, error) {
	f.arrive()
	return f.players, f.playersErr
}

// arrive blocks until every concurrent lookup has started, so a sequential
// coordinator would deadlock the test.
func (f fakeProducts) arrive() {
	if f.started == nil {
		return
	}
	f.started.Done()
	f.started.Wait()
}

type blockingClientInfo struct{}

func (blockingClientInfo) DeckCompatibility(ctx context.Context, _ int) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

type fakeClientInfo struct {
	category string
	started  *sync.WaitGroup
}

func (f fakeClientInfo) DeckCompatibility(context.Context, int) (string, error) {
	if f.started != nil {
		f.started.Done()
		f.started.Wait()
	}
	return f.category, nil
}

func TestFetchResolvesEverySlot(t *testing.T) {
	t.Parallel()

	started := &sync.WaitGroup{}
	started.Add(3)
	coordinator := New(Lookups{
		Profiles:   &fakeProfiles{summary: domain.ActorSummary{DisplayName: "gaben"}},
		Events:     fakeEvents{id: "5123"},
		Products:   fakeProducts{details: domain.StoreDetails{Name: "Portal"}, players: 42, started: started},
		ClientInfo: fakeClientInfo{category: "3", started: started},
	}, WithTimeout(time.Second))

	done := make(chan Result, 1)
	go func() {
		done <- coordinator.Fetch(context.Background(), Request{
			Actor:       testActor,
			ArticleURL:  "https://store.steampowered.com/news/1",
			ProductID:   400,
			CountryCode: "US",
		})
	}()

	var result Result
	select {
	case result = <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Fetch did not run product lookups concurrently")
	}

	actor, ok := result.Actor.Get()
	if !ok || actor.DisplayName != "gaben" || actor.ProfileID != testActor {
		t.Fatalf("actor = %+v (%v), want gaben", actor, ok)
	}
	if id := result.EventID.OrElse(""); id != "5123" {
		t.Fatalf("event id = %q, want 5123", id)
	}
	if details, _ := result.Details.Get(); details.Name != "Portal/US" {
		t.Fatalf("details name = %q, want Portal/US", details.Name)
	}
	if players := result.PlayerCount.OrElse(-1); players != 42 {
		t.Fatalf("player count = %d, want 42", players)
	}
	if category := result.DeckCategory.OrElse(""); category != "3" {
		t.Fatalf("deck category = %q, want 3", category)
	}
}

func TestFetchIsolatesFailures(t *testing.T) {
	t.Parallel()

	coordinator := New(Lookups{
		Profiles: &fakeProfiles{err: errors.New("boom")},
		Events:   fakeEvents{err: errors.New("not found")},
		Products: fakeProducts{details: domain.StoreDetails{Name: "Portal"}, playersErr: errors.New("503")},
	})
	result := coordinator.Fetch(context.Background(), Request{
		Actor:      testActor,
		ArticleURL: "https://example.com/a",
		ProductID:  400,
	})

	if result.Actor.Present() {
		t.Fatal("expected actor unresolved")
	}
	if result.EventID.Present() {
		t.Fatal("expected event id unresolved")
	}
	if result.PlayerCount.Present() {
		t.Fatal("expected player count unresolved")
	}
	if !result.Details.Present() {
		t.Fatal("expected details resolved despite sibling failures")
	}
	if result.DeckCategory.Present() {
		t.Fatal("expected deck category unresolved without a client info lookup")
	}
}

func TestFetchTimesOutSlowLookups(t *testing.T) {
	t.Parallel()

	coordinator := New(Lookups{
		Products:   fakeProducts{details: domain.StoreDetails{Name: "Portal"}, players: 7},
		ClientInfo: blockingClientInfo{},
	}, WithTimeout(20*time.Millisecond))

	result := coordinator.Fetch(context.Background(), Request{ProductID: 400})
	if result.DeckCategory.Present() {
		t.Fatal("expected timed out lookup unresolved")
	}
	if result.PlayerCount.OrElse(0) != 7 {
		t.Fatalf("player count = %d, want 7", result.PlayerCount.OrElse(0))
	}
}

func TestFetchSkipsLookupsNotRequested(t *testing.T) {
	t.Parallel()

	profiles := &fakeProfiles{}
	coordinator := New(Lookups{Profiles: profiles})
	result := coordinator.Fetch(context.Background(), Request{})

	if got := profiles.calls.Load(); got != 0 {
		t.Fatalf("profile calls = %d, want 0", got)
	}
	if result.Actor.Present() || result.Details.Present() || result.EventID.Present() {
		t.Fatalf("result = %+v, want every slot unresolved", result)
	}
}

func TestFetchCancelledContextLeavesSlotsUnresolved(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	coordinator := New(Lookups{ClientInfo: blockingClientInfo{}})
	result := coordinator.Fetch(ctx, Request{ProductID: 10})
	if result.DeckCategory.Present() {
		t.Fatal("expected cancelled lookup unresolved")
	}
}
