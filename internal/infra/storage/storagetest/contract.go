// Package storagetest holds the behaviour every storage backend must share.
package storagetest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainbooking "smarthost/internal/domain/booking"
	domainhosts "smarthost/internal/domain/hosts"
	domainproperties "smarthost/internal/domain/properties"
	"smarthost/internal/domain/shared/daterange"
	"smarthost/internal/domain/shared/domainerr"
)

// Repos is one freshly initialised backend.
type Repos struct {
	Hosts      domainhosts.Repository
	Properties domainproperties.Repository
	Bookings   domainbooking.Repository
}

// Factory returns an empty backend. Cleanup belongs on t.
type Factory func(t *testing.T) Repos

func Run(t *testing.T, newRepos Factory) {
	t.Run("hosts", func(t *testing.T) { testHosts(t, newRepos(t)) })
	t.Run("properties", func(t *testing.T) { testProperties(t, newRepos(t)) })
	t.Run("rooms", func(t *testing.T) { testRooms(t, newRepos(t)) })
	t.Run("room for missing property", func(t *testing.T) { testMissingProperty(t, newRepos(t)) })
	t.Run("returned rooms are detached", func(t *testing.T) { testDetachedRooms(t, newRepos(t)) })
	t.Run("bookings", func(t *testing.T) { testBookings(t, newRepos(t)) })
}

func testHosts(t *testing.T, repos Repos) {
	ctx := context.Background()

	list, err := repos.Hosts.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	added, err := repos.Hosts.Add(ctx, domainhosts.Host{Name: "  Alice ", Rating: 4.5})
	require.NoError(t, err)
	assert.Equal(t, domainhosts.Host{Name: "Alice", Rating: 4.5}, added)

	_, err = repos.Hosts.Add(ctx, domainhosts.Host{Name: "Bob"})
	require.NoError(t, err)

	_, err = repos.Hosts.Add(ctx, domainhosts.Host{Name: "Alice", Rating: 1})
	assert.True(t, domainerr.IsConflict(err), "duplicate name: %v", err)

	_, err = repos.Hosts.Add(ctx, domainhosts.Host{Name: "   "})
	assert.True(t, domainerr.IsValidation(err), "blank name: %v", err)

	list, err = repos.Hosts.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domainhosts.Host{{Name: "Alice", Rating: 4.5}, {Name: "Bob", Rating: 0}}, list)
}

func testProperties(t *testing.T, repos Repos) {
	ctx := context.Background()

	first, err := repos.Properties.AddProperty(ctx, domainproperties.PropertyDraft{Name: "Aruba House", Location: "Paradera"})
	require.NoError(t, err)
	second, err := repos.Properties.AddProperty(ctx, domainproperties.PropertyDraft{Name: "Beach Loft", Location: "Eagle Beach"})
	require.NoError(t, err)

	assert.Positive(t, int64(first.ID))
	assert.Greater(t, second.ID, first.ID)
	assert.Equal(t, "Aruba House", first.Name)
	assert.Equal(t, "Paradera", first.Location)

	_, err = repos.Properties.AddProperty(ctx, domainproperties.PropertyDraft{Name: "Aruba House", Location: "Noord"})
	assert.True(t, domainerr.IsConflict(err), "duplicate name: %v", err)

	noLocation, err := repos.Properties.AddProperty(ctx, domainproperties.PropertyDraft{Name: "No Location"})
	require.NoError(t, err)
	assert.Empty(t, noLocation.Location)

	list, err := repos.Properties.ListProperties(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domainproperties.Property{first, second, noLocation}, list)
}

func testRooms(t *testing.T, repos Repos) {
	ctx := context.Background()

	aruba, err := repos.Properties.AddProperty(ctx, domainproperties.PropertyDraft{Name: "Aruba House", Location: "Paradera"})
	require.NoError(t, err)
	loft, err := repos.Properties.AddProperty(ctx, domainproperties.PropertyDraft{Name: "Beach Loft", Location: "Eagle Beach"})
	require.NoError(t, err)

	seaView := "Sea view"
	withView, err := repos.Properties.AddRoom(ctx, domainproperties.RoomDraft{PropertyID: aruba.ID, Beds: domainproperties.BedsOf(2), Features: &seaView, Price: 100})
	require.NoError(t, err)
	plain, err := repos.Properties.AddRoom(ctx, domainproperties.RoomDraft{PropertyID: aruba.ID})
	require.NoError(t, err)
	other, err := repos.Properties.AddRoom(ctx, domainproperties.RoomDraft{PropertyID: loft.ID, Beds: domainproperties.BedsOf(3), Price: 80.5})
	require.NoError(t, err)

	assert.Positive(t, int64(withView.ID))
	assert.Greater(t, plain.ID, withView.ID)
	assert.Greater(t, other.ID, plain.ID)
	require.NotNil(t, withView.Features)
	assert.Equal(t, "Sea view", *withView.Features)
	assert.Equal(t, domainproperties.DefaultBeds, plain.Beds)
	assert.Nil(t, plain.Features)
	assert.Zero(t, plain.Price)

	_, err = repos.Properties.AddRoom(ctx, domainproperties.RoomDraft{PropertyID: aruba.ID, Price: -1})
	assert.True(t, domainerr.IsValidation(err), "negative price: %v", err)
	_, err = repos.Properties.AddRoom(ctx, domainproperties.RoomDraft{PropertyID: aruba.ID, Beds: domainproperties.BedsOf(-2)})
	assert.True(t, domainerr.IsValidation(err), "negative beds: %v", err)
	_, err = repos.Properties.AddRoom(ctx, domainproperties.RoomDraft{PropertyID: aruba.ID, Beds: domainproperties.BedsOf(0)})
	assert.True(t, domainerr.IsValidation(err), "zero beds: %v", err)

	all, err := repos.Properties.ListRooms(ctx, domainproperties.RoomFilter{})
	require.NoError(t, err)
	assert.Equal(t, []domainproperties.Room{withView, plain, other}, all)

	arubaRooms, err := repos.Properties.ListRooms(ctx, domainproperties.ForProperty(aruba.ID))
	require.NoError(t, err)
	assert.Equal(t, []domainproperties.Room{withView, plain}, arubaRooms)

	none, err := repos.Properties.ListRooms(ctx, domainproperties.ForProperty(loft.ID+100))
	require.NoError(t, err)
	assert.Empty(t, none)
}

func testMissingProperty(t *testing.T, repos Repos) {
	ctx := context.Background()

	_, err := repos.Properties.AddRoom(ctx, domainproperties.RoomDraft{PropertyID: 999, Beds: domainproperties.BedsOf(2), Price: 50})
	require.Error(t, err)
	assert.True(t, domainerr.IsNotFound(err), "missing property: %v", err)
	assert.Contains(t, err.Error(), "999")

	rooms, err := repos.Properties.ListRooms(ctx, domainproperties.RoomFilter{})
	require.NoError(t, err)
	assert.Empty(t, rooms)
}

func testBookings(t *testing.T, repos Repos) {
	ctx := context.Background()

	list, err := repos.Bookings.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	dr, err := daterange.New(date(2024, 1, 10), date(2024, 1, 15))
	require.NoError(t, err)
	first, err := repos.Bookings.Add(ctx, domainbooking.Draft{RoomID: 7, GuestName: "Ana", Language: "es", Range: dr})
	require.NoError(t, err)
	assert.Positive(t, int64(first.ID))

	leap, err := daterange.New(date(2024, 2, 28), date(2024, 3, 1))
	require.NoError(t, err)
	second, err := repos.Bookings.Add(ctx, domainbooking.Draft{RoomID: 7, GuestName: "Jan", Language: "nl", Range: leap})
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)

	_, err = repos.Bookings.Add(ctx, domainbooking.Draft{
		RoomID: 7, GuestName: "Bad", Language: "en",
		Range: daterange.DateRange{CheckIn: date(2024, 1, 15), CheckOut: date(2024, 1, 10)},
	})
	assert.True(t, domainerr.IsValidation(err), "reversed range: %v", err)

	list, err = repos.Bookings.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first, list[0])
	assert.Equal(t, "2024-01-10", daterange.FormatDate(list[0].Range.CheckIn))
	assert.Equal(t, "2024-01-15", daterange.FormatDate(list[0].Range.CheckOut))
	assert.True(t, list[1].Range.CheckIn.Equal(date(2024, 2, 28)))
	assert.True(t, list[1].Range.CheckOut.Equal(date(2024, 3, 1)))
	assert.Equal(t, 2, list[1].Range.Nights())
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testDetachedRooms(t *testing.T, repos Repos) {
	ctx := context.Background()

	prop, err := repos.Properties.AddProperty(ctx, domainproperties.PropertyDraft{Name: "Aruba House", Location: "Paradera"})
	require.NoError(t, err)
	features := "Sea view"
	room, err := repos.Properties.AddRoom(ctx, domainproperties.RoomDraft{PropertyID: prop.ID, Beds: domainproperties.BedsOf(2), Features: &features, Price: 100})
	require.NoError(t, err)

	features = "changed input"
	*room.Features = "changed result"

	listed, err := repos.Properties.ListRooms(ctx, domainproperties.ForProperty(prop.ID))
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.NotNil(t, listed[0].Features)
	assert.Equal(t, "Sea view", *listed[0].Features)
	assert.Equal(t, room.ID, listed[0].ID)

	*listed[0].Features = "changed listing"
	again, err := repos.Properties.ListRooms(ctx, domainproperties.RoomFilter{})
	require.NoError(t, err)
	require.Len(t, again, 1)
	assert.Equal(t, "Sea view", *again[0].Features)
}
