package source

const MaxRemoteSize = maxRemoteSize
