package steamurl

import (
	"testing"

	"github.com/leighmacdonald/steamid/v2/steamid"
	"github.com/louisbranch/steamwatch/internal/services/notifications/domain"
)

func TestURLs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "store app", got: Store(440, domain.ItemKindApp), want: "https://store.steampowered.com/app/440"},
		{name: "store bundle", got: Store(232, domain.ItemKindBundle), want: "https://store.steampowered.com/bundle/232"},
		{name: "store unknown kind", got: Store(10, "dlc"), want: "https://store.steampowered.com/app/10"},
		{name: "curator review", got: CuratorReview(440, 33), want: "https://store.steampowered.com/app/440?curator_clanid=33"},
		{name: "curator", got: Curator(33), want: "https://store.steampowered.com/curator/33"},
		{name: "app icon", got: AppIcon(440, "e3f5"), want: "https://cdn.cloudflare.steamstatic.com/steamcommunity/public/images/apps/440/e3f5.jpg"},
		{name: "app icon missing hash", got: AppIcon(440, " "), want: DefaultIcon},
		{name: "app icon missing id", got: AppIcon(0, "e3f5"), want: DefaultIcon},
		{name: "avatar medium", got: GroupAvatar("abc", AvatarMedium), want: "https://avatars.cloudflare.steamstatic.com/abc_medium.jpg"},
		{name: "avatar full", got: GroupAvatar("abc", AvatarFull), want: "https://avatars.cloudflare.steamstatic.com/abc_full.jpg"},
		{name: "avatar missing", got: GroupAvatar("", AvatarFull), want: DefaultIcon},
		{name: "profile", got: Profile(steamid.SID64(76561197960287930)), want: "https://steamcommunity.com/profiles/76561197960287930"},
		{name: "app announcement", got: EventAnnouncement(440, "501", OwnerApp), want: "https://store.steampowered.com/news/app/440/view/501"},
		{name: "group announcement", got: EventAnnouncement(4, "77", OwnerGroup), want: "https://steamcommunity.com/gid/4/announcements/detail/77"},
		{name: "workshop", got: Workshop("123"), want: "https://steamcommunity.com/sharedfiles/filedetails/?id=123"},
		{name: "news image placeholder", got: NewsImage("{STEAM_CLAN_IMAGE}/3703047/a.png"), want: "https://clan.cloudflare.steamstatic.com/images/3703047/a.png"},
		{name: "news image absolute", got: NewsImage("https://example.com/a.png"), want: "https://example.com/a.png"},
		{name: "news image relative", got: NewsImage("/3703047/a.png"), want: "https://clan.cloudflare.steamstatic.com/images/3703047/a.png"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Fatalf("%s = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestClientLinks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "app", got: ClientStoreLink(440, domain.ItemKindApp), want: "steam://store/440"},
		{name: "bundle", got: ClientStoreLink(232, domain.ItemKindBundle), want: "steam://openurl/https://store.steampowered.com/bundle/232"},
		{name: "sub", got: ClientStoreLink(469, domain.ItemKindSub), want: "steam://openurl/https://store.steampowered.com/sub/469"},
		{name: "workshop", got: ClientLink(LinkWorkshop, "123"), want: "steam://url/CommunityFilePage/123"},
		{name: "open url", got: ClientOpenURL("https://steamcommunity.com/app/440/discussions/0/1/"), want: "steam://openurl/https://steamcommunity.com/app/440/discussions/0/1/"},
		{name: "event", got: ClientEventAnnouncement(440, "501"), want: "steam://openurl/https://store.steampowered.com/news/app/440/view/501"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Fatalf("%s = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}
