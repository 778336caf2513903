package accessx_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vitacart/storefront/pkg/accessx"
	"github.com/vitacart/storefront/pkg/tokenx"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	c := accessx.Default()

	tests := []struct {
		path string
		want accessx.AccessClass
	}{
		{"/admin/orders.html", accessx.AdminRestricted},
		{"/admin/products.html", accessx.AdminRestricted},
		{"/cart.html", accessx.UserRestricted},
		{"/checkout.html", accessx.UserRestricted},
		{"/orders.html", accessx.UserRestricted},
		{"/about.html", accessx.Public},
		{"/", accessx.Public},
		{"/products.html", accessx.Public},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			require.Equal(t, tt.want, c.Classify(tt.path))
		})
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	t.Parallel()

	c := accessx.Default()
	require.Equal(t, c.Classify("/admin/orders.html"), c.Classify("/Admin/Orders.html"))
	require.Equal(t, c.Classify("/cart.html"), c.Classify("/CART.HTML"))
}

func TestClassifyAdminBeforeUser(t *testing.T) {
	t.Parallel()

	// "/admin/orders.html" also contains the user-restricted "/orders.html";
	// the admin list must win.
	c := accessx.Default()
	require.Equal(t, accessx.AdminRestricted, c.Classify("/admin/orders.html"))
}

func TestClassifyMountPrefix(t *testing.T) {
	t.Parallel()

	c := accessx.Default()
	c.MountPrefix = "/shop"

	require.Equal(t, accessx.UserRestricted, c.Classify("/shop/cart.html"))
	require.Equal(t, accessx.AdminRestricted, c.Classify("/Shop/Admin/orders.html"))
	require.Equal(t, accessx.Public, c.Classify("/shop/about.html"))
}

func TestSatisfied(t *testing.T) {
	t.Parallel()

	t.Run("public always allowed", func(t *testing.T) {
		require.True(t, accessx.Satisfied(accessx.Public, false, tokenx.RoleUnknown))
	})

	t.Run("user pages need any session", func(t *testing.T) {
		require.False(t, accessx.Satisfied(accessx.UserRestricted, false, tokenx.RoleUser))
		require.True(t, accessx.Satisfied(accessx.UserRestricted, true, tokenx.RoleUser))
		require.True(t, accessx.Satisfied(accessx.UserRestricted, true, tokenx.RoleAdmin))
	})

	t.Run("admin pages need admin role", func(t *testing.T) {
		require.False(t, accessx.Satisfied(accessx.AdminRestricted, true, tokenx.RoleUser))
		require.False(t, accessx.Satisfied(accessx.AdminRestricted, false, tokenx.RoleAdmin))
		require.True(t, accessx.Satisfied(accessx.AdminRestricted, true, tokenx.RoleAdmin))
	})
}
