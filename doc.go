// Package updeto checks whether an installed application is up to date
// against the version published on the App Store.
//
// The package is built around a small capability model: any backend that can
// answer "is the app updated" implements the base Provider interface, and may
// additionally implement the richer ErrorAwareProvider, InfoProvider and
// ErrorAwareInfoProvider interfaces. The Updeto facade wraps a provider and
// exposes every check in three calling conventions - blocking, callback and
// single-shot channel - regardless of which capabilities the underlying
// provider actually implements.
//
// The store-backed provider lives in the appstore subpackage:
//
//	provider, err := appstore.New("com.example.app", "1.2.3")
//	if err != nil {
//		// ...
//	}
//	info, err := updeto.New(provider).CheckInfoDetailed(ctx)
package updeto
