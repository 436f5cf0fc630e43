package neterr

//nolint:revive,stylecheck // names follow the C headers they mirror
const (
	// Address-resolution codes, as defined by ws2tcpip.h.

	EAI_AGAIN    Code = 11002 // WSATRY_AGAIN
	EAI_BADFLAGS Code = 10022 // WSAEINVAL
	EAI_FAIL     Code = 11003 // WSANO_RECOVERY
	EAI_FAMILY   Code = 10047 // WSAEAFNOSUPPORT
	EAI_MEMORY   Code = 8     // WSA_NOT_ENOUGH_MEMORY
	EAI_NODATA   Code = 11004 // WSANO_DATA
	EAI_NONAME   Code = 11001 // WSAHOST_NOT_FOUND
	EAI_SERVICE  Code = 10109 // WSATYPE_NOT_FOUND
	EAI_SOCKTYPE Code = 10044 // WSAESOCKTNOSUPPORT
)

//nolint:revive,stylecheck // names follow the C headers they mirror
const (
	// Socket codes, as defined by winsock2.h.

	WSABASEERR         Code = 10000
	WSAEINTR           Code = 10004
	WSAEBADF           Code = 10009
	WSAEACCES          Code = 10013
	WSAEFAULT          Code = 10014
	WSAEINVAL          Code = 10022
	WSAEMFILE          Code = 10024
	WSAEWOULDBLOCK     Code = 10035
	WSAEINPROGRESS     Code = 10036
	WSAEALREADY        Code = 10037
	WSAENOTSOCK        Code = 10038
	WSAEDESTADDRREQ    Code = 10039
	WSAEMSGSIZE        Code = 10040
	WSAEPROTOTYPE      Code = 10041
	WSAENOPROTOOPT     Code = 10042
	WSAEPROTONOSUPPORT Code = 10043
	WSAESOCKTNOSUPPORT Code = 10044
	WSAEOPNOTSUPP      Code = 10045
	WSAEPFNOSUPPORT    Code = 10046
	WSAEAFNOSUPPORT    Code = 10047
	WSAEADDRINUSE      Code = 10048
	WSAEADDRNOTAVAIL   Code = 10049
	WSAENETDOWN        Code = 10050
	WSAENETUNREACH     Code = 10051
	WSAENETRESET       Code = 10052
	WSAECONNABORTED    Code = 10053
	WSAECONNRESET      Code = 10054
	WSAENOBUFS         Code = 10055
	WSAEISCONN         Code = 10056
	WSAENOTCONN        Code = 10057
	WSAESHUTDOWN       Code = 10058
	WSAETOOMANYREFS    Code = 10059
	WSAETIMEDOUT       Code = 10060
	WSAECONNREFUSED    Code = 10061
	WSAELOOP           Code = 10062
	WSAENAMETOOLONG    Code = 10063
	WSAEHOSTDOWN       Code = 10064
	WSAEHOSTUNREACH    Code = 10065
	WSASYSNOTREADY     Code = 10091
	WSAVERNOTSUPPORTED Code = 10092
	WSANOTINITIALISED  Code = 10093
	WSAEDISCON         Code = 10101

	// Resolver codes reported through WSAGetLastError.

	HOST_NOT_FOUND Code = 11001
	TRY_AGAIN      Code = 11002
	NO_RECOVERY    Code = 11003
	NO_DATA        Code = 11004
)
